package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"perfumevault/internal/db/mock"
	"perfumevault/internal/handlers"
	"perfumevault/internal/metrics"
)

func TestNewAppliesDefaults(t *testing.T) {
	t.Cleanup(func() { handlers.Configure(nil, nil) })

	srv, err := New(Config{Addr: ":8080"})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if srv.httpServer.Addr != ":8080" {
		t.Fatalf("expected server addr :8080, got %q", srv.httpServer.Addr)
	}
	if srv.httpServer.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("expected default read header timeout, got %s", srv.httpServer.ReadHeaderTimeout)
	}
	if srv.config.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected default shutdown timeout, got %s", srv.config.ShutdownTimeout)
	}
	if srv.config.MetricsPath != "/metrics" {
		t.Fatalf("expected default metrics path, got %q", srv.config.MetricsPath)
	}
}

func TestServerServesAPIAndMetrics(t *testing.T) {
	db, err := mock.Open(context.Background(), "server-api-test")
	if err != nil {
		t.Fatalf("open mock database: %v", err)
	}
	t.Cleanup(func() {
		handlers.Configure(nil, nil)
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	m := metrics.New(metrics.Options{})
	srv, err := New(Config{Addr: ":9090", Database: db, Metrics: m, MetricsPath: "/internal/metrics"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	handler := srv.Handler()
	if handler == nil {
		t.Fatal("expected non-nil handler")
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/formulas/1/ifra-certificate", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected certificate to return 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/internal/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected metrics to return 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `route="/api/formulas/{formulaID}/ifra-certificate"`) {
		t.Fatalf("expected request to be counted by route pattern:\n%s", body)
	}
}

func TestStopWithoutStart(t *testing.T) {
	t.Cleanup(func() { handlers.Configure(nil, nil) })

	srv, err := New(Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := srv.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}
