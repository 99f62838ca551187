package web

import (
	"io"
	"net/http"
	"path"
	"strings"
)

// StaticHandler serves static files from the embedded filesystem
func (s *Server) StaticHandler(w http.ResponseWriter, r *http.Request) {
	requestPath := strings.TrimPrefix(r.URL.Path, "/static/")

	if strings.Contains(requestPath, "..") {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	file, err := s.staticFS.Open(path.Join("static", requestPath))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	if info, err := file.Stat(); err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	switch path.Ext(requestPath) {
	case ".css":
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
	case ".js":
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	case ".png":
		w.Header().Set("Content-Type", "image/png")
	case ".svg":
		w.Header().Set("Content-Type", "image/svg+xml")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")

	_, _ = io.Copy(w, file)
}
