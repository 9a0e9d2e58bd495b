package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/logixport/logixport-backend/api/responses"
	"github.com/logixport/logixport-backend/internal/documents"
	pkgerrors "github.com/logixport/logixport-backend/pkg/errors"
	"github.com/logixport/logixport-backend/pkg/logger"
)

// DocumentsList returns normative documents, optionally filtered with the
// category_id query parameter.
func DocumentsList(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var categoryID uint
		if raw := strings.TrimSpace(r.URL.Query().Get("category_id")); raw != "" {
			value, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid category_id"))
				return
			}
			categoryID = uint(value)
		}

		list, err := svc.List(r.Context(), categoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// DocumentsGet returns one document with category and references.
func DocumentsGet(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uintParam(r, "documentID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// DocumentsCategories lists the normative categories.
func DocumentsCategories(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// DocumentsSupplements lists circulars, bulletins, and other ancillary
// material, newest first.
func DocumentsSupplements(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListSupplements(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
