// Package web serves the dashboard page, rendered charts and exports.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"energydash/internal/chart"
	"energydash/internal/energy"
	"energydash/internal/metrics"
)

// Options configures optional server features.
type Options struct {
	// Format of the chart images embedded in the index page.
	Format chart.Format
	// Metrics, when set, records renders and requests and is served at
	// MetricsPath.
	Metrics     *metrics.Collector
	MetricsPath string
}

// Server represents the dashboard web server
type Server struct {
	dataset  *energy.Dataset
	figures  []chart.Figure
	cache    *chart.Cache
	opts     Options
	index    *template.Template
	staticFS fs.FS
	started  time.Time
	now      func() time.Time
}

// New creates a new web server for the given figures.
func New(ds *energy.Dataset, figures []chart.Figure, opts Options) (*Server, error) {
	if opts.Format == "" {
		opts.Format = chart.SVG
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	index, err := template.ParseFS(TemplatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	var observer chart.RenderObserver
	if opts.Metrics != nil {
		observer = opts.Metrics
		opts.Metrics.SetFigures(len(figures))
	}

	return &Server{
		dataset:  ds,
		figures:  figures,
		cache:    chart.NewCache(observer),
		opts:     opts,
		index:    index,
		staticFS: StaticFS,
		started:  time.Now(),
		now:      time.Now,
	}, nil
}

// Warm renders every figure into the cache.
func (s *Server) Warm() error {
	for _, fig := range s.figures {
		if _, err := s.cache.Get(fig, s.opts.Format); err != nil {
			return fmt.Errorf("failed to render %s: %w", fig.Name(), err)
		}
	}
	return nil
}
