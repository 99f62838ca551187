package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router creates the chi router with every dashboard route.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.LoggingMiddleware)
	r.Use(middleware.Compress(5))

	r.Get("/", s.IndexHandler)
	r.Get("/charts/{file}", s.ChartHandler)
	r.Get("/export/energy.xlsx", s.WorkbookHandler)
	r.Get("/export/summary.md", s.SummaryHandler)
	r.Get("/healthz", s.HealthHandler)
	r.Get("/static/*", s.StaticHandler)

	if s.opts.Metrics != nil {
		r.Method(http.MethodGet, s.opts.MetricsPath, s.opts.Metrics.Handler())
	}
	return r
}
