package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"energydash/internal/chart"
	"energydash/internal/logging"
	"energydash/internal/metrics"
	"energydash/internal/version"
	"energydash/internal/web"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		RunE:  runServe,
	}

	serveHost string
	servePort int
	serveWarm bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringVar(&serveHost, "host", "", "override server.host")
	flags.IntVar(&servePort, "port", 0, "override server.port")
	flags.BoolVar(&serveWarm, "warm", false, "render every figure before accepting requests")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	ds, figures, err := buildFigures()
	if err != nil {
		return err
	}
	format, err := chart.ParseFormat(cfg.Charts.Format)
	if err != nil {
		return err
	}

	opts := web.Options{Format: format}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		collector, err := metrics.NewCollector(reg)
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		opts.Metrics = collector
		opts.MetricsPath = cfg.Metrics.Path
	}

	srv, err := web.New(ds, figures, opts)
	if err != nil {
		return err
	}
	if serveWarm {
		if err := srv.Warm(); err != nil {
			return err
		}
		logging.Info("Figures rendered", slog.Int("count", len(figures)))
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           srv.Router(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info("Server starting",
			slog.String("address", "http://"+server.Addr),
			slog.String("version", version.GetFullVersionInfo()))
		if cfg.Metrics.Enabled {
			logging.Infof("    http://%s%s - Prometheus metrics", server.Addr, cfg.Metrics.Path)
		}
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error("Graceful shutdown timed out, forcing close", logging.Err(err))
		if err := server.Close(); err != nil {
			logging.Error("Server force close error", logging.Err(err))
		}
	}

	logging.Info("Server stopped")
	return nil
}
