// Package geo places countries on flat world maps.
package geo

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Country is a country's representative point in degrees.
type Country struct {
	ISO  string
	Name string
	Lat  float64
	Lon  float64
}

// Lookup returns the centroid of the ISO alpha-3 code.
func Lookup(iso string) (Country, bool) {
	c, ok := centroids[strings.ToUpper(iso)]
	return c, ok
}

// Codes returns every known ISO code, sorted.
func Codes() []string {
	codes := make([]string, 0, len(centroids))
	for code := range centroids {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Point is a projected map coordinate.
type Point struct {
	X, Y float64
}

// Projection maps longitude/latitude in degrees onto the plane.
type Projection interface {
	Name() string
	Project(lon, lat float64) Point
}

// Equirectangular is the plate carrée projection, scaled to radians.
type Equirectangular struct{}

func (Equirectangular) Name() string { return "equirectangular" }

func (Equirectangular) Project(lon, lat float64) Point {
	return Point{X: radians(lon), Y: radians(lat)}
}

// NaturalEarth is the Natural Earth projection (Šavrič, Jenny, Patterson
// and Jenny, 2011) in its polynomial form.
type NaturalEarth struct{}

func (NaturalEarth) Name() string { return "natural earth" }

func (NaturalEarth) Project(lon, lat float64) Point {
	lambda := radians(lon)
	phi := radians(lat)
	phi2 := phi * phi
	phi4 := phi2 * phi2
	phi6 := phi4 * phi2
	phi8 := phi4 * phi4
	phi10 := phi8 * phi2
	phi12 := phi6 * phi6

	x := lambda * (0.870700 - 0.131979*phi2 - 0.013791*phi4 + 0.003971*phi10 - 0.001529*phi12)
	y := phi * (1.007226 + 0.015085*phi2 - 0.044475*phi6 + 0.028874*phi8 - 0.005916*phi10)
	return Point{X: x, Y: y}
}

// ProjectionByName resolves a projection name as used in the config.
func ProjectionByName(name string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "equirectangular", "plate carree":
		return Equirectangular{}, nil
	case "natural earth", "natural-earth", "naturalearth":
		return NaturalEarth{}, nil
	default:
		return nil, fmt.Errorf("unknown projection %q", name)
	}
}

// Outline returns the projected boundary of the whole globe as a closed
// ring, sampled every step degrees.
func Outline(p Projection, step float64) []Point {
	if step <= 0 {
		step = 5
	}
	var ring []Point
	for lat := -90.0; lat < 90; lat += step {
		ring = append(ring, p.Project(-180, lat))
	}
	for lon := -180.0; lon < 180; lon += step {
		ring = append(ring, p.Project(lon, 90))
	}
	for lat := 90.0; lat > -90; lat -= step {
		ring = append(ring, p.Project(180, lat))
	}
	for lon := 180.0; lon > -180; lon -= step {
		ring = append(ring, p.Project(lon, -90))
	}
	return ring
}

// Graticule returns projected meridians and parallels spaced every degrees
// apart, excluding the outline itself.
func Graticule(p Projection, every float64) [][]Point {
	if every <= 0 {
		every = 30
	}
	var lines [][]Point
	for lon := -180 + every; lon < 180; lon += every {
		var line []Point
		for lat := -90.0; lat <= 90; lat += 2 {
			line = append(line, p.Project(lon, lat))
		}
		lines = append(lines, line)
	}
	for lat := -90 + every; lat < 90; lat += every {
		var line []Point
		for lon := -180.0; lon <= 180; lon += 2 {
			line = append(line, p.Project(lon, lat))
		}
		lines = append(lines, line)
	}
	return lines
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
