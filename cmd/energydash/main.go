package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"energydash/internal/chart"
	"energydash/internal/config"
	"energydash/internal/energy"
	"energydash/internal/logging"
)

var (
	rootCmd = &cobra.Command{
		Use:               "energydash",
		Short:             "Energy data dashboard: gas reserves, production and hydrogen by region",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	configPath string
	verbose    bool

	cfg *config.Config
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to the YAML configuration file (default "+config.DefaultPath+")")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setup loads the configuration and initializes logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		loaded.Logging.Level = "debug"
	}
	if err := logging.Initialize(&loaded.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	cfg = loaded
	return nil
}

// buildFigures assembles the dataset and the dashboard figures.
func buildFigures() (*energy.Dataset, []chart.Figure, error) {
	ds := energy.Build()
	figures, err := chart.Dashboard(ds, cfg.Charts.Options)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build figures: %w", err)
	}
	return ds, figures, nil
}

func main() {
	err := rootCmd.Execute()
	_ = logging.GetLogger().Close()
	if err != nil {
		os.Exit(1)
	}
}
