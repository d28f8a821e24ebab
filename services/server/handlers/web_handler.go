package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/RuvinSL/content-seo-check/pkg/interfaces"
)

// WebHandler serves the browser UI
type WebHandler struct {
	logger interfaces.Logger
}

func NewWebHandler(logger interfaces.Logger) *WebHandler {
	return &WebHandler{
		logger: logger,
	}
}

// HomePage serves the main web UI
func (h *WebHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("Serving home page", "remote_addr", r.RemoteAddr)

	htmlPath := filepath.Join("web", "templates", "index.html")
	http.ServeFile(w, r, htmlPath)
}
