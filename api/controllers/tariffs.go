package controllers

import (
	"net/http"
	"strings"

	"github.com/logixport/logixport-backend/api/responses"
	"github.com/logixport/logixport-backend/internal/incoterms"
	"github.com/logixport/logixport-backend/internal/tariffs"
	"github.com/logixport/logixport-backend/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// TariffsList returns tariff rows filtered by the version and code query
// parameters.
func TariffsList(svc tariffs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := tariffs.ListFilter{
			Version: strings.TrimSpace(r.URL.Query().Get("version")),
			Code:    strings.TrimSpace(r.URL.Query().Get("code")),
		}

		list, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// IncotermsList returns every commercial term.
func IncotermsList(svc incoterms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// IncotermsGet returns one term by its code.
func IncotermsGet(svc incoterms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		dto, err := svc.GetByCode(r.Context(), code)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
