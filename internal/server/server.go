package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"perfumevault/internal/handlers"
	applog "perfumevault/internal/log"
	"perfumevault/internal/metrics"
	"perfumevault/internal/store"
)

// Config captures the runtime configuration for the HTTP server.
type Config struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	AllowedOrigins    []string
	Database          *gorm.DB

	// Metrics may be nil to disable instrumentation and the metrics route.
	Metrics     *metrics.Metrics
	MetricsPath string
}

// Server wraps an http.Server and exposes helpers for bootstrapping a
// production-ready web service.
type Server struct {
	config     Config
	httpServer *http.Server
}

// New builds a new Server using the provided configuration.
func New(cfg Config) (*Server, error) {
	applog.Debug(context.Background(), "initializing server",
		"addr", cfg.Addr,
		"metrics", cfg.Metrics != nil,
		"origins", len(cfg.AllowedOrigins),
	)

	if cfg.ReadHeaderTimeout <= 0 {
		applog.Debug(context.Background(), "read header timeout not provided, using default")
		cfg.ReadHeaderTimeout = 5 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		applog.Debug(context.Background(), "shutdown timeout not provided, using default")
		cfg.ShutdownTimeout = 5 * time.Second
	}
	if strings.TrimSpace(cfg.MetricsPath) == "" {
		cfg.MetricsPath = "/metrics"
	}

	handlers.Configure(store.New(cfg.Database), cfg.Metrics)

	applog.Debug(context.Background(), "handler dependencies configured", "database", cfg.Database != nil)

	handler := newRouter(cfg)

	applog.Debug(context.Background(), "http handler chain prepared")

	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
	}, nil
}

// Start begins serving HTTP traffic using the underlying http.Server.
func (s *Server) Start() error {
	applog.Debug(context.Background(), "server starting listener", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the HTTP server with a timeout.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	applog.Debug(ctx, "server initiating graceful shutdown", "timeout", s.config.ShutdownTimeout.String())
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the configured HTTP handler, enabling integration tests.
func (s *Server) Handler() http.Handler {
	applog.Debug(context.Background(), "server handler requested")
	return s.httpServer.Handler
}
