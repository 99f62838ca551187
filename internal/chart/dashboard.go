package chart

import (
	"fmt"

	"energydash/internal/energy"
	"energydash/internal/geo"
)

// Figure names, also used in URLs and output file names.
const (
	FigureRPRatio       = "rp-ratio"
	FigureHydrogen      = "hydrogen"
	FigureGasReserves   = "gas-reserves"
	FigureGasProduction = "gas-production"
)

// MapOptions configures a choropleth figure.
type MapOptions struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Projection string `yaml:"projection"`
	Scale      string `yaml:"scale"`
	Labels     bool   `yaml:"labels"`
}

// Options configures the four dashboard figures.
type Options struct {
	RPRatio       MapOptions `yaml:"rp_ratio"`
	Hydrogen      Size       `yaml:"hydrogen"`
	GasReserves   Size       `yaml:"gas_reserves"`
	GasProduction MapOptions `yaml:"gas_production"`
}

// DefaultOptions returns the standard dashboard layout.
func DefaultOptions() Options {
	return Options{
		RPRatio: MapOptions{
			Width:      1200,
			Height:     600,
			Projection: "equirectangular",
			Scale:      "Plasma",
			Labels:     true,
		},
		Hydrogen:    Size{Width: 1000, Height: 500},
		GasReserves: Size{Width: 1000, Height: 500},
		GasProduction: MapOptions{
			Width:      1000,
			Height:     600,
			Projection: "natural earth",
			Scale:      "YlOrRd",
			Labels:     true,
		},
	}
}

// Dashboard builds the figures in page order.
func Dashboard(ds *energy.Dataset, opts Options) ([]Figure, error) {
	rp, err := newMap(ChoroplethConfig{
		Name:   FigureRPRatio,
		Title:  "World Map: Reserves-to-Production (R/P) Ratio",
		Metric: "R/P Ratio",
	}, opts.RPRatio, ds.RPMap)
	if err != nil {
		return nil, err
	}

	hydrogen, err := NewStackedBars(StackedBarsConfig{
		Name:   FigureHydrogen,
		Title:  "Hydrogen Production by Region",
		XLabel: "Region",
		YLabel: "Production (TWh)",
		Size:   opts.Hydrogen,
	}, ds.Hydrogen)
	if err != nil {
		return nil, err
	}

	reserves, err := NewTimeSeries(TimeSeriesConfig{
		Name:   FigureGasReserves,
		Title:  "Total World Gas Reserves (1980-2020)",
		Series: "Gas Reserves",
		XLabel: "Year",
		YLabel: "Reserves (Trillion cubic metres)",
		Size:   opts.GasReserves,
	}, ds.GasReserves)
	if err != nil {
		return nil, err
	}

	production, err := newMap(ChoroplethConfig{
		Name:   FigureGasProduction,
		Title:  "Natural Gas Production by Region (2023)",
		Metric: "Production",
	}, opts.GasProduction, ds.ProductionMap)
	if err != nil {
		return nil, err
	}

	return []Figure{rp, hydrogen, reserves, production}, nil
}

func newMap(cfg ChoroplethConfig, opts MapOptions, rows []energy.CountryMetricRow) (*Choropleth, error) {
	projection, err := geo.ProjectionByName(opts.Projection)
	if err != nil {
		return nil, fmt.Errorf("figure %s: %w", cfg.Name, err)
	}
	cfg.Projection = projection
	cfg.Scale = opts.Scale
	cfg.Size = Size{Width: opts.Width, Height: opts.Height}
	cfg.Labels = opts.Labels
	return NewChoropleth(cfg, rows)
}

// Find returns the figure with the given name.
func Find(figures []Figure, name string) (Figure, bool) {
	for _, fig := range figures {
		if fig.Name() == name {
			return fig, true
		}
	}
	return nil, false
}
