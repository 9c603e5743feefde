package handlers

import "net/http"

// PageHandler serves the editor page.
type PageHandler struct {
	html []byte
}

// NewPageHandler creates a new PageHandler for the given HTML document.
func NewPageHandler(html string) *PageHandler {
	return &PageHandler{html: []byte(html)}
}

// ServeHTTP handles GET /.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.html)
}
