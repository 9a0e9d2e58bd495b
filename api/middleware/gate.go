package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/logixport/logixport-backend/api/responses"
	pkgAuth "github.com/logixport/logixport-backend/pkg/auth"
	"github.com/logixport/logixport-backend/pkg/config"
	"github.com/logixport/logixport-backend/pkg/db/models"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
	"github.com/logixport/logixport-backend/pkg/logger"
)

const accessTokenCookie = "access_token"

// Paths reachable without a token. "/" matches exactly, the rest by prefix.
var publicPrefixes = []string{
	"/login",
	"/register",
	"/information",
	"/static",
	"/templates",
	"/auth/login",
	"/auth/verify",
	"/api/token",
	"/healthz",
	"/metrics",
}

// UserLoader resolves the token subject against the user store.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// Gate authenticates every non-public request before it reaches a handler.
// Tokens come from the Authorization header or the access_token cookie; the
// subject must resolve to an active user, and admin surfaces additionally
// require the admin role. API and auth paths fail with coded JSON, web paths
// with a 303 redirect.
func Gate(cfg config.JWTConfig, users UserLoader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRequest(r) {
				next.ServeHTTP(w, r)
				return
			}

			token := extractToken(r)
			if token == "" {
				denyUnauthenticated(w, r, logg, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				denyUnauthenticated(w, r, logg, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			userID, err := claims.SubjectID()
			if err != nil {
				denyUnauthenticated(w, r, logg, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid subject"))
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				denyUnauthenticated(w, r, logg, pkgerrors.New(pkgerrors.CodeUnauthorized, "unknown user"))
				return
			}
			if !user.IsActive {
				denyUnauthenticated(w, r, logg, pkgerrors.New(pkgerrors.CodeUnauthorized, "account disabled"))
				return
			}

			if isAdminPath(r.URL.Path) && !user.Role.CanAccessAdmin() {
				denyForbidden(w, r, logg, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required"))
				return
			}

			ctx := WithUser(r.Context(), user)
			if logg != nil {
				ctx = logg.WithUserID(ctx, strconv.FormatUint(uint64(user.ID), 10))
				ctx = logg.WithActorRole(ctx, string(user.Role))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicRequest also exempts signup: the register page posts to /api/users
// before the visitor has any token. Only the create is open; /api/users/me
// stays gated.
func isPublicRequest(r *http.Request) bool {
	if r.Method == http.MethodPost && r.URL.Path == "/api/users" {
		return true
	}
	return isPublicPath(r.URL.Path)
}

func isPublicPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isAdminPath(path string) bool {
	return strings.HasPrefix(path, "/admin") || strings.HasPrefix(path, "/api/admin")
}

// wantsJSON reports whether failures on this path should be coded JSON
// instead of a browser redirect.
func wantsJSON(path string) bool {
	return strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/auth")
}

func extractToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw != "" {
		if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
			return strings.TrimSpace(raw[7:])
		}
		return raw
	}
	if cookie, err := r.Cookie(accessTokenCookie); err == nil {
		return strings.TrimSpace(cookie.Value)
	}
	return ""
}

func denyUnauthenticated(w http.ResponseWriter, r *http.Request, logg *logger.Logger, err error) {
	if wantsJSON(r.URL.Path) {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func denyForbidden(w http.ResponseWriter, r *http.Request, logg *logger.Logger, err error) {
	if wantsJSON(r.URL.Path) {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
