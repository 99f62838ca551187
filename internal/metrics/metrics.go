// Package metrics exposes dashboard render and HTTP metrics to Prometheus.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"energydash/internal/chart"
)

// Collector bundles the dashboard's Prometheus metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	Renders         *prometheus.CounterVec
	RenderDurations *prometheus.HistogramVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDurations   *prometheus.HistogramVec
	Figures         prometheus.Gauge
}

// NewCollector registers the metrics against reg, defaulting to the global
// registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	renders, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "energydash_renders_total",
		Help: "Figure renders, labeled by figure, format and result.",
	}, []string{"figure", "format", "result"}), "energydash_renders_total")
	if err != nil {
		return nil, err
	}

	renderDurations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "energydash_render_duration_seconds",
		Help:    "Figure render latency in seconds.",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"figure", "format"}), "energydash_render_duration_seconds")
	if err != nil {
		return nil, err
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "energydash_http_requests_total",
		Help: "Handled HTTP requests, labeled by route and status code.",
	}, []string{"route", "code"}), "energydash_http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "energydash_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"}), "energydash_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	figures, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "energydash_figures",
		Help: "Number of figures on the dashboard.",
	}), "energydash_figures")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		Renders:         renders,
		RenderDurations: renderDurations,
		HTTPRequests:    requests,
		HTTPDurations:   durations,
		Figures:         figures,
	}, nil
}

// ObserveRender implements chart.RenderObserver.
func (c *Collector) ObserveRender(figure string, format chart.Format, d time.Duration, err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.Renders.WithLabelValues(figure, string(format), result).Inc()
	c.RenderDurations.WithLabelValues(figure, string(format)).Observe(d.Seconds())
}

// ObserveRequest records one handled HTTP request.
func (c *Collector) ObserveRequest(route string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	c.HTTPDurations.WithLabelValues(route).Observe(d.Seconds())
}

// SetFigures records how many figures the dashboard serves.
func (c *Collector) SetFigures(n int) {
	if c == nil {
		return
	}
	c.Figures.Set(float64(n))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
