package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energydash/internal/chart"
)

func TestObserveRender(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.ObserveRender("hydrogen", chart.PNG, 15*time.Millisecond, nil)
	c.ObserveRender("hydrogen", chart.PNG, 5*time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Renders.WithLabelValues("hydrogen", "png", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Renders.WithLabelValues("hydrogen", "png", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.RenderDurations))
}

func TestObserveRequestAndFigures(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.ObserveRequest("/charts/{file}", http.StatusOK, time.Millisecond)
	c.ObserveRequest("/charts/{file}", http.StatusNotFound, time.Millisecond)
	c.SetFigures(4)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("/charts/{file}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("/charts/{file}", "404")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.Figures))
}

func TestNewCollectorReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	require.NoError(t, err)
	second, err := NewCollector(reg)
	require.NoError(t, err)

	assert.Same(t, first.Renders, second.Renders)
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.ObserveRender("x", chart.SVG, time.Second, nil)
	c.ObserveRequest("/", 200, time.Second)
	c.SetFigures(1)
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	c.SetFigures(4)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "energydash_figures 4")
}
