package middleware

import (
	"net/http"

	"github.com/logixport/logixport-backend/api/responses"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
	"github.com/logixport/logixport-backend/pkg/logger"
)

// RequireAdmin re-checks the admin capability on handlers already behind the
// gate. The gate blocks admin paths on its own; this keeps the subtree safe
// even if a route is mounted outside the /admin prefix.
func RequireAdmin(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !RoleFromContext(r.Context()).CanAccessAdmin() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
