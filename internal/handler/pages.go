package handler

import (
	"net/http"
	"path/filepath"
)

// PageHandler serves the static multi-page frontend from a directory.
type PageHandler struct {
	dir string
}

// NewPageHandler creates a PageHandler rooted at dir (typically "./public").
func NewPageHandler(dir string) *PageHandler {
	return &PageHandler{dir: dir}
}

// Page returns a handler that serves one named HTML file, used for the
// pretty page routes (/, /about, /skills, /projects, /contact).
func (h *PageHandler) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(h.dir, name))
	}
}

// Static serves everything else under the public directory (css, js, images).
func (h *PageHandler) Static() http.Handler {
	return http.FileServer(http.Dir(h.dir))
}
