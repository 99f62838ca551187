package chart

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"

	"energydash/internal/logging"
)

// RenderAll writes every figure into dir as <name>.<format>. A failing
// figure does not stop the others; all failures are returned together.
func RenderAll(figures []Figure, dir string, f Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		written []string
		result  *multierror.Error
	)
	for _, fig := range figures {
		path := filepath.Join(dir, fig.Name()+"."+string(f))
		start := time.Now()
		if err := renderFile(fig, path, f); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", fig.Name(), err))
			continue
		}
		logging.Info("Figure written",
			slog.String("figure", fig.Name()),
			slog.String("path", path),
			slog.Duration("duration", time.Since(start)))
		written = append(written, path)
	}
	return written, result.ErrorOrNil()
}

func renderFile(fig Figure, path string, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return fig.Render(file, f)
}
