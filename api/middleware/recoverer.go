package middleware

import (
	"fmt"
	"net/http"

	"github.com/logixport/logixport-backend/api/responses"
	"github.com/logixport/logixport-backend/api/web"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
	"github.com/logixport/logixport-backend/pkg/logger"
)

// Recoverer turns panics into a coded JSON 500 on API and auth paths and the
// dedicated error page on web paths.
func Recoverer(logg *logger.Logger, renderer *web.Renderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err := fmt.Errorf("panic: %v", rec)
					ctx := r.Context()
					if logg != nil {
						ctx = logg.WithFields(ctx, map[string]any{"panic": rec})
						logg.Error(ctx, "panic.recovered", err)
					}
					if !wantsJSON(r.URL.Path) && renderer != nil {
						renderer.ServerError(w, r, err)
						return
					}
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "panic"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
