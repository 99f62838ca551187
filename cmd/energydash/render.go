package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"energydash/internal/chart"
)

var (
	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Write every dashboard figure to a directory",
		RunE:  runRender,
	}

	renderOut    string
	renderFormat string
)

func init() {
	rootCmd.AddCommand(renderCmd)

	flags := renderCmd.Flags()
	flags.StringVarP(&renderOut, "out", "o", "charts", "output directory")
	flags.StringVarP(&renderFormat, "format", "f", "", "image format, png or svg (default charts.format)")
}

func runRender(cmd *cobra.Command, args []string) error {
	name := renderFormat
	if name == "" {
		name = cfg.Charts.Format
	}
	format, err := chart.ParseFormat(name)
	if err != nil {
		return err
	}

	_, figures, err := buildFigures()
	if err != nil {
		return err
	}

	written, err := chart.RenderAll(figures, renderOut, format)
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	if err != nil {
		return fmt.Errorf("failed to render %d of %d figures: %w", len(figures)-len(written), len(figures), err)
	}
	return nil
}
