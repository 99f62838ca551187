package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energydash/internal/energy"
	"energydash/internal/geo"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func smallOptions() Options {
	opts := DefaultOptions()
	opts.RPRatio.Width, opts.RPRatio.Height = 400, 200
	opts.GasProduction.Width, opts.GasProduction.Height = 400, 240
	opts.Hydrogen = Size{Width: 400, Height: 300}
	opts.GasReserves = Size{Width: 400, Height: 300}
	return opts
}

func TestDashboardFigures(t *testing.T) {
	figures, err := Dashboard(energy.Build(), smallOptions())
	require.NoError(t, err)

	var names []string
	for _, fig := range figures {
		names = append(names, fig.Name())
		assert.NotEmpty(t, fig.Title())
	}
	assert.Equal(t, []string{FigureRPRatio, FigureHydrogen, FigureGasReserves, FigureGasProduction}, names)

	for _, fig := range figures {
		fig := fig
		t.Run(fig.Name()+"/png", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, fig.Render(&buf, PNG))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
		})
		t.Run(fig.Name()+"/svg", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, fig.Render(&buf, SVG))
			assert.Contains(t, buf.String(), "<svg")
		})
	}
}

func TestDashboardUnknownProjection(t *testing.T) {
	opts := smallOptions()
	opts.RPRatio.Projection = "mercator"

	_, err := Dashboard(energy.Build(), opts)
	assert.ErrorContains(t, err, "rp-ratio")
}

func TestChoroplethRange(t *testing.T) {
	c, err := NewChoropleth(ChoroplethConfig{
		Name:       "test",
		Projection: geo.Equirectangular{},
		Scale:      "Plasma",
		Size:       Size{Width: 300, Height: 150},
	}, []energy.CountryMetricRow{
		{ISOAlpha: "USA", Value: 13.7},
		{ISOAlpha: "ZZZ", Value: 999},
		{ISOAlpha: "SAU", Value: 110.4},
	})
	require.NoError(t, err)

	min, max := c.Range()
	assert.Equal(t, 13.7, min)
	assert.Equal(t, 110.4, max)
	assert.Len(t, c.points, 2)
}

func TestChoroplethSingleValue(t *testing.T) {
	c, err := NewChoropleth(ChoroplethConfig{
		Name:       "flat",
		Projection: geo.NaturalEarth{},
		Scale:      "YlOrRd",
		Size:       Size{Width: 300, Height: 150},
	}, energy.ExpandRegions([]energy.RegionMetricRow{{Region: "CIS", Value: 70.5}}, energy.RegionToISO))
	require.NoError(t, err)

	min, max := c.Range()
	assert.Less(t, min, max)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf, PNG))
}

func TestChoroplethNoData(t *testing.T) {
	cfg := ChoroplethConfig{Name: "empty", Projection: geo.Equirectangular{}}

	_, err := NewChoropleth(cfg, nil)
	assert.Error(t, err)

	_, err = NewChoropleth(cfg, []energy.CountryMetricRow{{ISOAlpha: "ZZZ", Value: 1}})
	assert.Error(t, err)

	_, err = NewChoropleth(ChoroplethConfig{Name: "noproj"}, []energy.CountryMetricRow{{ISOAlpha: "USA", Value: 1}})
	assert.Error(t, err)
}

func TestTimeSeriesNeedsPoints(t *testing.T) {
	_, err := NewTimeSeries(TimeSeriesConfig{Name: "one"}, []energy.ReservesPoint{{Year: 1980, Reserves: 1}})
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(".SVG")
	require.NoError(t, err)
	assert.Equal(t, SVG, f)
	assert.Equal(t, "image/svg+xml", f.ContentType())

	f, err = ParseFormat("png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", f.ContentType())

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

func TestGradient(t *testing.T) {
	g := Plasma(0, 10)

	low, err := g.At(0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x0d, G: 0x08, B: 0x87, A: 255}, low)

	high, err := g.At(10)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xf0, G: 0xf9, B: 0x21, A: 255}, high)

	_, err = g.At(11)
	assert.Error(t, err)
	_, err = g.At(-1)
	assert.Error(t, err)

	assert.Len(t, g.Palette(5).Colors(), 5)
}

func TestYlOrRd(t *testing.T) {
	g, err := YlOrRd(162, 1261.1)
	require.NoError(t, err)

	low, err := g.At(162)
	require.NoError(t, err)
	high, err := g.At(1261.1)
	require.NoError(t, err)

	// yellow end is lighter than the red end
	lr, lg, lb, _ := low.RGBA()
	hr, hg, hb, _ := high.RGBA()
	assert.Greater(t, lr+lg+lb, hr+hg+hb)

	_, err = ScaleByName("Viridis", 0, 1)
	assert.Error(t, err)
}

type fakeFigure struct {
	name  string
	err   error
	calls int32
	delay time.Duration
}

func (f *fakeFigure) Name() string  { return f.name }
func (f *fakeFigure) Title() string { return f.name }

func (f *fakeFigure) Render(w io.Writer, format Format) error {
	atomic.AddInt32(&f.calls, 1)
	time.Sleep(f.delay)
	if f.err != nil {
		return f.err
	}
	_, err := fmt.Fprintf(w, "%s.%s", f.name, format)
	return err
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
}

func (o *recordingObserver) ObserveRender(figure string, f Format, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, fmt.Sprintf("%s.%s:%v", figure, f, err == nil))
}

func TestCacheRendersOnce(t *testing.T) {
	fig := &fakeFigure{name: "fake", delay: 20 * time.Millisecond}
	obs := &recordingObserver{}
	cache := NewCache(obs)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := cache.Get(fig, PNG)
			assert.NoError(t, err)
			assert.Equal(t, "fake.png", string(data))
		}()
	}
	wg.Wait()

	data, err := cache.Get(fig, PNG)
	require.NoError(t, err)
	assert.Equal(t, "fake.png", string(data))
	assert.EqualValues(t, 1, atomic.LoadInt32(&fig.calls))
	assert.Equal(t, []string{"fake.png:true"}, obs.calls)

	_, err = cache.Get(fig, SVG)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
}

func TestCacheDoesNotKeepErrors(t *testing.T) {
	fig := &fakeFigure{name: "broken", err: errors.New("boom")}
	cache := NewCache(nil)

	_, err := cache.Get(fig, PNG)
	assert.Error(t, err)
	_, err = cache.Get(fig, PNG)
	assert.Error(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&fig.calls))
	assert.Zero(t, cache.Len())
}

func TestRenderAllCollectsErrors(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	figures := []Figure{
		&fakeFigure{name: "one"},
		&fakeFigure{name: "two", err: errors.New("no ink")},
		&fakeFigure{name: "three", err: errors.New("no paper")},
	}

	written, err := RenderAll(figures, dir, SVG)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "two: no ink")
	assert.Contains(t, err.Error(), "three: no paper")
	assert.Equal(t, []string{filepath.Join(dir, "one.svg")}, written)

	data, err := os.ReadFile(filepath.Join(dir, "one.svg"))
	require.NoError(t, err)
	assert.Equal(t, "one.svg", string(data))
}
