package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/logixport/logixport-backend/internal/users"
	"github.com/logixport/logixport-backend/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the payload every page template receives.
type PageData struct {
	Title string
	User  *users.UserDTO
	Data  map[string]any
}

// Renderer executes the embedded page templates. Each page template is parsed
// together with the shared base layout.
type Renderer struct {
	pages map[string]*template.Template
	logg  *logger.Logger
}

var pageNames = []string{
	"landing",
	"login",
	"register",
	"dashboard",
	"dashboard_admin",
	"information",
	"error_404",
	"error_500",
}

// NewRenderer parses all embedded templates up front so a broken template
// fails at boot, not per request.
func NewRenderer(logg *logger.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages, logg: logg}, nil
}

// Render writes the named page with the given status code.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, page string, data PageData) {
	tmpl, ok := r.pages[page]
	if !ok {
		r.renderFallback(w, req, fmt.Errorf("unknown page %q", page))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil && r.logg != nil {
		r.logg.Error(req.Context(), "render page failed", err)
	}
}

// NotFound renders the dedicated 404 page.
func (r *Renderer) NotFound(w http.ResponseWriter, req *http.Request) {
	r.Render(w, req, http.StatusNotFound, "error_404", PageData{Title: "Page not found"})
}

// ServerError renders the dedicated 500 page without leaking the cause.
func (r *Renderer) ServerError(w http.ResponseWriter, req *http.Request, err error) {
	if r.logg != nil {
		r.logg.Error(req.Context(), "web handler failed", err)
	}
	r.Render(w, req, http.StatusInternalServerError, "error_500", PageData{Title: "Something went wrong"})
}

func (r *Renderer) renderFallback(w http.ResponseWriter, req *http.Request, err error) {
	if r.logg != nil {
		r.logg.Error(req.Context(), "render fallback", err)
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
