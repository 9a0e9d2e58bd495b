package controllers

import (
	"net/http"

	"github.com/logixport/logixport-backend/api/responses"
	"github.com/logixport/logixport-backend/pkg/db"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
	"github.com/logixport/logixport-backend/pkg/logger"
)

// Healthz reports readiness, including the datasource.
func Healthz(database db.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if database != nil {
			if err := database.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}
