package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"perfumevault/internal/handlers"
	applog "perfumevault/internal/log"
)

func newRouter(cfg Config) http.Handler {
	ctx := context.Background()
	r := chi.NewRouter()

	applog.Debug(ctx, "registering http middleware")
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logRequests)
	r.Use(middleware.Recoverer)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
		applog.Debug(ctx, "cors enabled", "origins", cfg.AllowedOrigins)
	}
	r.Use(cfg.Metrics.Middleware)

	applog.Debug(ctx, "registering http routes")
	r.Get("/healthz", handlers.Health)
	applog.Debug(ctx, "route registered", "path", "/healthz")
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, cfg.MetricsPath, cfg.Metrics.Handler())
		applog.Debug(ctx, "route registered", "path", cfg.MetricsPath)
	}
	r.Route("/api", handlers.Routes)
	applog.Debug(ctx, "route registered", "path", "/api", "api", true)
	return r
}

// logRequests writes one debug line per request with its status and latency.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		applog.Debug(r.Context(), "http request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(started).String(),
			"requestID", middleware.GetReqID(r.Context()),
		)
	})
}
