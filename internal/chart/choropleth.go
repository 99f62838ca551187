package chart

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"energydash/internal/energy"
	"energydash/internal/geo"
	"energydash/internal/logging"
)

// colorBarWidth is the share of the figure width given to the colour bar.
const colorBarWidth = 0.12

var (
	oceanColor     = color.RGBA{R: 236, G: 242, B: 250, A: 255}
	graticuleColor = color.RGBA{R: 200, G: 208, B: 220, A: 255}
	outlineColor   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// ChoroplethConfig describes a country-level map figure.
type ChoroplethConfig struct {
	Name       string
	Title      string
	Metric     string
	Projection geo.Projection
	Scale      string
	Size       Size
	Labels     bool
}

// Choropleth colours each country marker by its value.
type Choropleth struct {
	cfg    ChoroplethConfig
	points []countryPoint
	min    float64
	max    float64
}

type countryPoint struct {
	iso   string
	at    geo.Point
	value float64
}

// NewChoropleth places rows on the configured projection. Rows whose ISO
// code has no known centroid are dropped.
func NewChoropleth(cfg ChoroplethConfig, rows []energy.CountryMetricRow) (*Choropleth, error) {
	if cfg.Projection == nil {
		return nil, fmt.Errorf("choropleth %s: no projection", cfg.Name)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("choropleth %s: no data", cfg.Name)
	}

	c := &Choropleth{cfg: cfg, min: math.Inf(1), max: math.Inf(-1)}
	for _, row := range rows {
		country, ok := geo.Lookup(row.ISOAlpha)
		if !ok {
			logging.Warn("Country has no centroid, skipping",
				slog.String("figure", cfg.Name),
				slog.String("iso", row.ISOAlpha))
			continue
		}
		c.points = append(c.points, countryPoint{
			iso:   country.ISO,
			at:    cfg.Projection.Project(country.Lon, country.Lat),
			value: row.Value,
		})
		c.min = math.Min(c.min, row.Value)
		c.max = math.Max(c.max, row.Value)
	}
	if len(c.points) == 0 {
		return nil, fmt.Errorf("choropleth %s: no drawable countries", cfg.Name)
	}
	if c.max == c.min {
		c.max = c.min + 1
	}
	return c, nil
}

func (c *Choropleth) Name() string  { return c.cfg.Name }
func (c *Choropleth) Title() string { return c.cfg.Title }

// Range returns the value range mapped onto the colour scale.
func (c *Choropleth) Range() (min, max float64) { return c.min, c.max }

// Render draws the map and its colour bar side by side.
func (c *Choropleth) Render(w io.Writer, f Format) error {
	cmap, err := ScaleByName(c.cfg.Scale, c.min, c.max)
	if err != nil {
		return err
	}

	mapPlot, err := c.mapPlot(cmap)
	if err != nil {
		return err
	}
	barPlot := c.colorBarPlot(cmap)

	width, height := c.cfg.Size.width(), c.cfg.Size.height()
	canvas, err := draw.NewFormattedCanvas(width, height, string(f))
	if err != nil {
		return fmt.Errorf("failed to create %s canvas: %w", f, err)
	}
	dc := draw.New(canvas)
	barW := width * colorBarWidth

	mapPlot.Draw(draw.Crop(dc, 0, -barW, 0, 0))
	barPlot.Draw(draw.Crop(dc, width-barW, 0, 0, 0))

	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.cfg.Name, err)
	}
	return nil
}

func (c *Choropleth) mapPlot(cmap palette.ColorMap) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.cfg.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.HideAxes()

	outline := toXYs(geo.Outline(c.cfg.Projection, 5))
	ocean, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, err
	}
	ocean.Color = oceanColor
	ocean.LineStyle.Color = outlineColor
	ocean.LineStyle.Width = vg.Points(0.75)
	p.Add(ocean)

	for _, meridian := range geo.Graticule(c.cfg.Projection, 30) {
		line, err := plotter.NewLine(toXYs(meridian))
		if err != nil {
			return nil, err
		}
		line.Color = graticuleColor
		line.Width = vg.Points(0.5)
		p.Add(line)
	}

	xys := make(plotter.XYs, len(c.points))
	labels := make([]string, len(c.points))
	for i, pt := range c.points {
		xys[i] = plotter.XY{X: pt.at.X, Y: pt.at.Y}
		labels[i] = pt.iso
	}

	markers, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	radius := markerRadius(c.cfg.Size)
	markers.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		fill, err := cmap.At(c.points[i].value)
		if err != nil {
			fill = color.Gray{Y: 128}
		}
		return draw.GlyphStyle{Color: fill, Radius: radius, Shape: draw.CircleGlyph{}}
	}
	p.Add(markers)

	if c.cfg.Labels {
		names, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return nil, err
		}
		for i := range names.TextStyle {
			names.TextStyle[i].Font.Size = vg.Points(4)
			names.TextStyle[i].XAlign = draw.XCenter
			names.TextStyle[i].YAlign = draw.YCenter
		}
		p.Add(names)
	}

	bounds := c.bounds(outline)
	p.X.Min, p.X.Max = bounds[0], bounds[1]
	p.Y.Min, p.Y.Max = bounds[2], bounds[3]
	return p, nil
}

func (c *Choropleth) colorBarPlot(cmap palette.ColorMap) *plot.Plot {
	p := plot.New()
	p.HideX()
	p.Title.Text = c.cfg.Metric
	p.Title.TextStyle.Font.Size = vg.Points(10)
	p.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true, Colors: 255})
	return p
}

// bounds returns xmin, xmax, ymin, ymax of the outline with a small margin.
func (c *Choropleth) bounds(outline plotter.XYs) [4]float64 {
	xmin, xmax, ymin, ymax := plotter.XYRange(outline)
	mx := (xmax - xmin) * 0.02
	my := (ymax - ymin) * 0.02
	return [4]float64{xmin - mx, xmax + mx, ymin - my, ymax + my}
}

func markerRadius(s Size) vg.Length {
	r := pixels(s.Width) / 260
	if r < vg.Points(2) {
		return vg.Points(2)
	}
	return r
}

func toXYs(points []geo.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}
