package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"energydash/internal/energy"
)

var (
	blueHydrogen  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	greenHydrogen = color.RGBA{R: 0, G: 128, B: 0, A: 255}
)

// StackedBarsConfig describes the hydrogen production figure.
type StackedBarsConfig struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	Size   Size
}

// StackedBars draws blue hydrogen with green hydrogen stacked on top, one
// bar per region in table order.
type StackedBars struct {
	cfg  StackedBarsConfig
	rows []energy.HydrogenRow
}

func NewStackedBars(cfg StackedBarsConfig, rows []energy.HydrogenRow) (*StackedBars, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("stacked bars %s: no data", cfg.Name)
	}
	return &StackedBars{cfg: cfg, rows: rows}, nil
}

func (b *StackedBars) Name() string  { return b.cfg.Name }
func (b *StackedBars) Title() string { return b.cfg.Title }

func (b *StackedBars) Render(w io.Writer, f Format) error {
	p := plot.New()
	p.Title.Text = b.cfg.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = b.cfg.XLabel
	p.Y.Label.Text = b.cfg.YLabel

	blueValues := make(plotter.Values, len(b.rows))
	greenValues := make(plotter.Values, len(b.rows))
	labels := make([]string, len(b.rows))
	maxTotal := 0.0
	for i, row := range b.rows {
		blueValues[i] = row.Blue
		greenValues[i] = row.Green
		labels[i] = row.Region
		maxTotal = math.Max(maxTotal, row.Blue+row.Green)
	}

	width := pixels(b.cfg.Size.Width) * 0.6 / vg.Length(len(b.rows))

	blue, err := plotter.NewBarChart(blueValues, width)
	if err != nil {
		return fmt.Errorf("failed to create blue bars: %w", err)
	}
	blue.Color = blueHydrogen
	blue.LineStyle.Width = vg.Length(0)

	green, err := plotter.NewBarChart(greenValues, width)
	if err != nil {
		return fmt.Errorf("failed to create green bars: %w", err)
	}
	green.Color = greenHydrogen
	green.LineStyle.Width = vg.Length(0)
	green.StackOn(blue)

	p.Add(plotter.NewGrid(), blue, green)
	p.Legend.Add("Blue", blue)
	p.Legend.Add("Green", green)
	p.Legend.Top = true

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	p.Y.Min = 0
	p.Y.Max = maxTotal * 1.1

	return writePlot(w, p, b.cfg.Size, f)
}
