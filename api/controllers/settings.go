package controllers

import (
	"net/http"

	"github.com/jdrosales/playmerch-backend/api/responses"
	settingssvc "github.com/jdrosales/playmerch-backend/internal/settings"
	"github.com/jdrosales/playmerch-backend/pkg/enums"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
	"github.com/jdrosales/playmerch-backend/pkg/logger"
)

type paymentMethodsResponse struct {
	PaymentMethods []enums.PaymentMethod `json:"payment_methods"`
}

// SettingsPaymentMethods lists the payment methods the checkout form
// offers.
func SettingsPaymentMethods(svc settingssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		responses.WriteSuccess(w, paymentMethodsResponse{PaymentMethods: svc.PaymentMethods()})
	}
}
