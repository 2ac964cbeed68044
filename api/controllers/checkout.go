package controllers

import (
	"net/http"

	"github.com/jdrosales/playmerch-backend/api/middleware"
	"github.com/jdrosales/playmerch-backend/api/responses"
	"github.com/jdrosales/playmerch-backend/api/validators"
	checkoutsvc "github.com/jdrosales/playmerch-backend/internal/checkout"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
	"github.com/jdrosales/playmerch-backend/pkg/logger"
	"github.com/jdrosales/playmerch-backend/pkg/types"
)

// Checkout handles submission of the session's cart as an order.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		cartID := middleware.CartIDFromContext(r.Context())
		if cartID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SubmitOrder(r.Context(), cartID, checkoutsvc.SubmitOrderInput{
			Customer:      payload.Customer,
			PaymentMethod: payload.PaymentMethod,
			Notes:         payload.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

type checkoutRequest struct {
	Customer      types.CustomerInfo `json:"customer" validate:"required"`
	PaymentMethod string             `json:"payment_method" validate:"required"`
	Notes         *string            `json:"notes,omitempty"`
}
