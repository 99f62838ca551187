package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"energydash/internal/energy"
	"energydash/internal/export"
	"energydash/internal/logging"
)

var (
	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Write the dashboard tables as an xlsx workbook",
		RunE:  runExport,
	}

	exportOut     string
	exportSummary bool
)

func init() {
	rootCmd.AddCommand(exportCmd)

	flags := exportCmd.Flags()
	flags.StringVarP(&exportOut, "out", "o", "energy.xlsx", "workbook path")
	flags.BoolVar(&exportSummary, "summary", false, "also write a markdown summary next to the workbook")
}

func runExport(cmd *cobra.Command, args []string) error {
	ds := energy.Build()

	if err := writeFile(exportOut, func(w io.Writer) error {
		return export.WriteWorkbook(w, ds)
	}); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), exportOut)

	if exportSummary {
		path := strings.TrimSuffix(exportOut, filepath.Ext(exportOut)) + ".md"
		if err := writeFile(path, func(w io.Writer) error {
			return export.WriteSummary(w, ds, time.Now())
		}); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logging.Info("File written", slog.String("path", path))
	return nil
}
