package web

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"energydash/internal/chart"
	"energydash/internal/export"
	"energydash/internal/logging"
	"energydash/internal/version"
)

// IndexHandler renders the dashboard page.
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Title   string
		Figures []chart.Figure
		Format  chart.Format
		Version string
	}{
		Title:   "Energy Data Visualization",
		Figures: s.figures,
		Format:  s.opts.Format,
		Version: version.GetVersionInfo(),
	}

	var buf bytes.Buffer
	if err := s.index.Execute(&buf, data); err != nil {
		logging.Error("Failed to render index", logging.Err(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// ChartHandler serves /charts/{name}.{ext}.
func (s *Server) ChartHandler(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	ext := path.Ext(file)
	name := strings.TrimSuffix(file, ext)

	format, err := chart.ParseFormat(ext)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	fig, ok := chart.Find(s.figures, name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := s.cache.Get(fig, format)
	if err != nil {
		logging.Error("Failed to render figure",
			slog.String("figure", name),
			slog.String("format", string(format)),
			logging.Err(err))
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(data)
}

// WorkbookHandler serves the dataset as an xlsx download.
func (s *Server) WorkbookHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, s.dataset); err != nil {
		logging.Error("Failed to build workbook", logging.Err(err))
		http.Error(w, "Failed to build workbook", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="energy.xlsx"`)
	_, _ = buf.WriteTo(w)
}

// SummaryHandler serves the markdown summary.
func (s *Server) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.WriteSummary(&buf, s.dataset, s.now()); err != nil {
		logging.Error("Failed to build summary", logging.Err(err))
		http.Error(w, "Failed to build summary", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// HealthHandler handles health check requests
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":  "ok",
		"version": version.GetFullVersionInfo(),
		"uptime":  s.now().Sub(s.started).Round(time.Second).String(),
		"figures": len(s.figures),
		"cached":  s.cache.Len(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
