package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageHandler serves the server-rendered pages
type PageHandler struct {
	templates *template.Template
}

// NewPageHandler parses the embedded page templates
func NewPageHandler() (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{templates: tmpl}, nil
}

// Login handles GET /login and GET / for logged-out visitors
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "login.html")
}

// App handles GET /app
func (h *PageHandler) App(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "app.html")
}

// NotFound handles every path no other route claims
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "404.html")
}

func (h *PageHandler) render(w http.ResponseWriter, status int, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates.ExecuteTemplate(w, name, nil); err != nil {
		slog.Error("rendering page", slog.String("template", name), slog.Any("error", err))
	}
}
