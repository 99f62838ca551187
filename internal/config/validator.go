package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"energydash/internal/chart"
	"energydash/internal/geo"
	"energydash/internal/logging"
)

// Validate checks the entire configuration and reports every problem at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := c.Server.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Charts.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		result = multierror.Append(result, fmt.Errorf("metrics.path must start with '/', got %q", c.Metrics.Path))
	}
	if !logging.ValidLevel(c.Logging.Level) {
		result = multierror.Append(result, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Validate validates server configuration
func (s *ServerConfig) Validate() error {
	var result *multierror.Error

	if s.Port < 1 || s.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ShutdownTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("server.shutdown_timeout must be positive"))
	}
	for name, d := range map[string]int64{
		"read_header_timeout": int64(s.ReadHeaderTimeout),
		"read_timeout":        int64(s.ReadTimeout),
		"write_timeout":       int64(s.WriteTimeout),
		"idle_timeout":        int64(s.IdleTimeout),
	} {
		if d < 0 {
			result = multierror.Append(result, fmt.Errorf("server.%s must not be negative", name))
		}
	}
	return result.ErrorOrNil()
}

// Validate validates chart layout configuration
func (c *ChartsConfig) Validate() error {
	var result *multierror.Error

	if _, err := chart.ParseFormat(c.Format); err != nil {
		result = multierror.Append(result, fmt.Errorf("charts.format: %w", err))
	}

	maps := map[string]chart.MapOptions{
		"rp_ratio":       c.RPRatio,
		"gas_production": c.GasProduction,
	}
	for name, m := range maps {
		if m.Width <= 0 || m.Height <= 0 {
			result = multierror.Append(result, fmt.Errorf("charts.%s size must be positive, got %dx%d", name, m.Width, m.Height))
		}
		if _, err := geo.ProjectionByName(m.Projection); err != nil {
			result = multierror.Append(result, fmt.Errorf("charts.%s: %w", name, err))
		}
		if _, err := chart.ScaleByName(m.Scale, 0, 1); err != nil {
			result = multierror.Append(result, fmt.Errorf("charts.%s: %w", name, err))
		}
	}

	sizes := map[string]chart.Size{
		"hydrogen":     c.Hydrogen,
		"gas_reserves": c.GasReserves,
	}
	for name, s := range sizes {
		if s.Width <= 0 || s.Height <= 0 {
			result = multierror.Append(result, fmt.Errorf("charts.%s size must be positive, got %dx%d", name, s.Width, s.Height))
		}
	}

	return result.ErrorOrNil()
}
