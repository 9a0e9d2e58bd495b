package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/logixport/logixport-backend/api/middleware"
	"github.com/logixport/logixport-backend/api/responses"
	"github.com/logixport/logixport-backend/internal/auth"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
	"github.com/logixport/logixport-backend/pkg/logger"
)

// APIToken implements the OAuth2-password-style token endpoint. The form
// field is called username but carries the account email. The response is the
// bare OAuth2 shape, not the standard envelope, so generic OAuth2 clients can
// consume it.
func APIToken(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body"))
			return
		}

		email := r.PostFormValue("username")
		password := r.PostFormValue("password")
		if email == "" || password == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "username and password are required"))
			return
		}

		result, err := svc.Login(r.Context(), auth.LoginRequest{Email: email, Password: password}, middleware.ClientIP(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": result.AccessToken,
			"token_type":   result.TokenType,
			"expires_in":   result.ExpiresIn,
		})
	}
}
