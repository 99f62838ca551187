package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"energydash/internal/energy"
)

// TimeSeriesConfig describes the gas reserves figure.
type TimeSeriesConfig struct {
	Name   string
	Title  string
	Series string
	XLabel string
	YLabel string
	Size   Size
}

// TimeSeries draws a yearly series as a line with point markers.
type TimeSeries struct {
	cfg    TimeSeriesConfig
	points []energy.ReservesPoint
}

func NewTimeSeries(cfg TimeSeriesConfig, points []energy.ReservesPoint) (*TimeSeries, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("time series %s: need at least two points, got %d", cfg.Name, len(points))
	}
	return &TimeSeries{cfg: cfg, points: points}, nil
}

func (t *TimeSeries) Name() string  { return t.cfg.Name }
func (t *TimeSeries) Title() string { return t.cfg.Title }

func (t *TimeSeries) Render(w io.Writer, f Format) error {
	xs := make([]float64, len(t.points))
	ys := make([]float64, len(t.points))
	for i, pt := range t.points {
		xs[i] = float64(pt.Year)
		ys[i] = pt.Reserves
	}

	lineColor := drawing.ColorFromHex("636efa")
	graph := gochart.Chart{
		Title:  t.cfg.Title,
		Width:  t.cfg.Size.Width,
		Height: t.cfg.Size.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:           t.cfg.XLabel,
			ValueFormatter: yearFormatter,
		},
		YAxis: gochart.YAxis{
			Name: t.cfg.YLabel,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    t.cfg.Series,
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					DotColor:    lineColor,
					DotWidth:    3,
				},
			},
		},
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	provider := gochart.PNG
	if f == SVG {
		provider = gochart.SVG
	}
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("failed to render %s: %w", t.cfg.Name, err)
	}
	return nil
}

func yearFormatter(v interface{}) string {
	if year, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", year)
	}
	return ""
}
