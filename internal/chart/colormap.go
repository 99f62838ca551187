package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
)

var errOutOfRange = errors.New("chart: value outside colour scale")

// plasmaStops are the ten control colours of the Plasma sequential scale.
var plasmaStops = []color.Color{
	hex(0x0d0887), hex(0x46039f), hex(0x7201a8), hex(0x9c179e), hex(0xbd3786),
	hex(0xd8576b), hex(0xed7953), hex(0xfb9f3a), hex(0xfdca26), hex(0xf0f921),
}

// Plasma returns the Plasma continuous colour scale over [min, max].
func Plasma(min, max float64) palette.ColorMap {
	return newGradient(plasmaStops, min, max)
}

// YlOrRd returns the ColorBrewer yellow-orange-red continuous colour scale
// over [min, max].
func YlOrRd(min, max float64) (palette.ColorMap, error) {
	p, err := brewer.GetPalette(brewer.TypeAny, "YlOrRd", 9)
	if err != nil {
		return nil, fmt.Errorf("failed to load YlOrRd palette: %w", err)
	}
	return newGradient(p.Colors(), min, max), nil
}

// ScaleByName resolves a colour scale name used in the figure configuration.
func ScaleByName(name string, min, max float64) (palette.ColorMap, error) {
	switch name {
	case "Plasma", "plasma":
		return Plasma(min, max), nil
	case "YlOrRd", "ylorrd":
		return YlOrRd(min, max)
	}
	return nil, fmt.Errorf("unknown colour scale %q", name)
}

// gradient interpolates linearly in RGB between evenly spaced stops.
type gradient struct {
	stops    []color.NRGBA
	min, max float64
	alpha    float64
}

func newGradient(stops []color.Color, min, max float64) *gradient {
	g := &gradient{min: min, max: max, alpha: 1}
	for _, c := range stops {
		g.stops = append(g.stops, color.NRGBAModel.Convert(c).(color.NRGBA))
	}
	return g
}

func (g *gradient) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, errOutOfRange
	}
	span := g.max - g.min
	eps := math.Abs(span) * 1e-9
	if v < g.min-eps || v > g.max+eps {
		return nil, errOutOfRange
	}
	t := 0.0
	if span > 0 {
		t = math.Min(math.Max((v-g.min)/span, 0), 1)
	}

	pos := t * float64(len(g.stops)-1)
	i := int(math.Floor(pos))
	if i >= len(g.stops)-1 {
		return g.withAlpha(g.stops[len(g.stops)-1]), nil
	}
	frac := pos - float64(i)
	a, b := g.stops[i], g.stops[i+1]
	return g.withAlpha(color.NRGBA{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}), nil
}

func (g *gradient) withAlpha(c color.NRGBA) color.Color {
	c.A = uint8(math.Round(255 * g.alpha))
	return c
}

func (g *gradient) Max() float64 { return g.max }
func (g *gradient) Min() float64 { return g.min }
func (g *gradient) SetMax(v float64) { g.max = v }
func (g *gradient) SetMin(v float64) { g.min = v }
func (g *gradient) Alpha() float64 { return g.alpha }
func (g *gradient) SetAlpha(a float64) { g.alpha = a }

// Palette samples n evenly spaced colours from the scale.
func (g *gradient) Palette(n int) palette.Palette {
	colors := make(swatch, n)
	for i := range colors {
		v := g.min
		if n > 1 {
			v += (g.max - g.min) * float64(i) / float64(n-1)
		}
		colors[i], _ = g.At(v)
	}
	return colors
}

type swatch []color.Color

func (s swatch) Colors() []color.Color { return s }

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func hex(v uint32) color.Color {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
