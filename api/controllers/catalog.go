package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jdrosales/playmerch-backend/api/responses"
	"github.com/jdrosales/playmerch-backend/api/validators"
	catalogsvc "github.com/jdrosales/playmerch-backend/internal/catalog"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
	"github.com/jdrosales/playmerch-backend/pkg/logger"
)

const maxCatalogPageSize = 100

// CatalogListProducts handles the storefront product listing, optionally
// filtered by category and capped by a limit.
func CatalogListProducts(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		category := validators.QueryString(r, "category")
		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, maxCatalogPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListProducts(r.Context(), category, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// CatalogGetProduct handles the product detail page lookup.
func CatalogGetProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id required"))
			return
		}

		product, err := svc.GetProduct(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}
