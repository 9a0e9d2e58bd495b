package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/logixport/logixport-backend/api/middleware"
	"github.com/logixport/logixport-backend/api/responses"
	"github.com/logixport/logixport-backend/api/web"
	"github.com/logixport/logixport-backend/internal/admin"
	"github.com/logixport/logixport-backend/internal/users"
	pkgAuth "github.com/logixport/logixport-backend/pkg/auth"
	"github.com/logixport/logixport-backend/pkg/config"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
	"github.com/logixport/logixport-backend/pkg/logger"
)

// WebPages bundles the dependencies shared by the HTML handlers.
type WebPages struct {
	Renderer *web.Renderer
	JWTCfg   config.JWTConfig
	Users    middleware.UserLoader
	Admin    admin.Service
	Logg     *logger.Logger
}

// optionalUser resolves the visitor on public pages, where the gate attaches
// nothing. Invalid or missing tokens just mean an anonymous visitor.
func (p *WebPages) optionalUser(r *http.Request) *users.UserDTO {
	if user := middleware.UserFromContext(r.Context()); user != nil {
		return users.FromModel(user)
	}

	token := bearerOrCookieToken(r)
	if token == "" || p.Users == nil {
		return nil
	}
	claims, err := pkgAuth.ParseAccessToken(p.JWTCfg, token)
	if err != nil {
		return nil
	}
	userID, err := claims.SubjectID()
	if err != nil {
		return nil
	}
	user, err := p.Users.FindByID(r.Context(), userID)
	if err != nil || user == nil || !user.IsActive {
		return nil
	}
	return users.FromModel(user)
}

// Landing renders the public start page, or sends signed-in visitors to their
// dashboard.
func (p *WebPages) Landing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if user := p.optionalUser(r); user != nil {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		p.Renderer.Render(w, r, http.StatusOK, "landing", web.PageData{Title: "Inicio"})
	}
}

// Login renders the sign-in form.
func (p *WebPages) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if user := p.optionalUser(r); user != nil {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		p.Renderer.Render(w, r, http.StatusOK, "login", web.PageData{Title: "Iniciar sesión"})
	}
}

// Register renders the signup form.
func (p *WebPages) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if user := p.optionalUser(r); user != nil {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		p.Renderer.Render(w, r, http.StatusOK, "register", web.PageData{Title: "Crear cuenta"})
	}
}

// Information renders the public info page.
func (p *WebPages) Information() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Renderer.Render(w, r, http.StatusOK, "information", web.PageData{
			Title: "Información",
			User:  p.optionalUser(r),
		})
	}
}

// Dashboard renders the signed-in start page; admins get the admin variant.
func (p *WebPages) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if user.Role.CanAccessAdmin() {
			p.renderAdminDashboard(w, r, users.FromModel(user))
			return
		}
		p.Renderer.Render(w, r, http.StatusOK, "dashboard", web.PageData{
			Title: "Panel",
			User:  users.FromModel(user),
		})
	}
}

// AdminDashboard renders the admin panel. The gate already enforced the role.
func (p *WebPages) AdminDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		p.renderAdminDashboard(w, r, users.FromModel(user))
	}
}

func (p *WebPages) renderAdminDashboard(w http.ResponseWriter, r *http.Request, user *users.UserDTO) {
	data := map[string]any{}
	if p.Admin != nil {
		if stats, err := p.Admin.Stats(r.Context()); err == nil {
			data["stats"] = stats
		} else if p.Logg != nil {
			p.Logg.Warn(r.Context(), "admin stats unavailable")
		}
	}
	p.Renderer.Render(w, r, http.StatusOK, "dashboard_admin", web.PageData{
		Title: "Administración",
		User:  user,
		Data:  data,
	})
}

// Logout clears the session cookie and returns to the sign-in page.
func (p *WebPages) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearSessionCookie(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

// LegacyTemplateRedirect maps the old /templates/pages/{page}.html URLs onto
// their routed equivalents.
func (p *WebPages) LegacyTemplateRedirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := strings.TrimSuffix(chi.URLParam(r, "page"), ".html")
		switch page {
		case "", "index", "landing":
			http.Redirect(w, r, "/", http.StatusMovedPermanently)
		case "login", "register", "dashboard", "information":
			http.Redirect(w, r, "/"+page, http.StatusMovedPermanently)
		default:
			p.Renderer.NotFound(w, r)
		}
	}
}

// NotFound renders the web 404 page; API and auth paths get coded JSON.
func (p *WebPages) NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") || strings.HasPrefix(r.URL.Path, "/auth") {
			responses.WriteError(r.Context(), p.Logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "resource not found"))
			return
		}
		p.Renderer.NotFound(w, r)
	}
}
