// Package chart builds the dashboard figures and encodes them as PNG or SVG.
package chart

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Format is an output image encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat accepts "png" or "svg" in any case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimPrefix(s, "."))) {
	case PNG:
		return PNG, nil
	case SVG:
		return SVG, nil
	}
	return "", fmt.Errorf("unsupported image format %q", s)
}

// ContentType returns the HTTP media type of f.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Size is a figure size in pixels at 96 DPI.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (s Size) width() vg.Length  { return pixels(s.Width) }
func (s Size) height() vg.Length { return pixels(s.Height) }

func pixels(px int) vg.Length {
	return vg.Length(px) * vg.Inch / 96
}

// Figure is a chart that can encode itself.
type Figure interface {
	Name() string
	Title() string
	Render(w io.Writer, f Format) error
}

// writePlot encodes a single gonum plot.
func writePlot(w io.Writer, p *plot.Plot, size Size, f Format) error {
	wt, err := p.WriterTo(size.width(), size.height(), string(f))
	if err != nil {
		return fmt.Errorf("failed to create plot writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	return nil
}
