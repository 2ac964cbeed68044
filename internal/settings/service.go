package settings

import (
	"fmt"

	"github.com/jdrosales/playmerch-backend/pkg/config"
	"github.com/jdrosales/playmerch-backend/pkg/enums"
)

// PaymentInstructions is the manual-payment guidance shown to the customer
// after checkout. The shape is per payment method.
type PaymentInstructions struct {
	Method       enums.PaymentMethod `json:"method"`
	Title        string              `json:"title"`
	Lines        []string            `json:"lines,omitempty"`
	CheckoutURL  string              `json:"checkout_url,omitempty"`
	ContactEmail string              `json:"contact_email,omitempty"`
	ContactPhone string              `json:"contact_phone,omitempty"`
}

// Service resolves storefront settings that live in configuration rather
// than the database.
type Service interface {
	PaymentInstructions(method enums.PaymentMethod) *PaymentInstructions
	PaymentMethods() []enums.PaymentMethod
}

type service struct {
	payments config.PaymentsConfig
}

// NewService builds a settings service from the loaded configuration.
func NewService(payments config.PaymentsConfig) Service {
	return &service{payments: payments}
}

func (s *service) PaymentMethods() []enums.PaymentMethod {
	return []enums.PaymentMethod{
		enums.PaymentMethodGateway,
		enums.PaymentMethodBankTransfer,
		enums.PaymentMethodMobilePayment,
	}
}

func (s *service) PaymentInstructions(method enums.PaymentMethod) *PaymentInstructions {
	switch method {
	case enums.PaymentMethodGateway:
		return &PaymentInstructions{
			Method:       method,
			Title:        "Complete your payment online",
			CheckoutURL:  s.payments.GatewayCheckoutURL,
			ContactEmail: s.payments.ContactEmail,
		}
	case enums.PaymentMethodBankTransfer:
		return &PaymentInstructions{
			Method: method,
			Title:  "Pay by bank transfer",
			Lines: []string{
				fmt.Sprintf("Bank: %s", s.payments.BankName),
				fmt.Sprintf("Account holder: %s", s.payments.BankAccountHolder),
				fmt.Sprintf("Account number: %s", s.payments.BankAccountNumber),
				fmt.Sprintf("ID number: %s", s.payments.BankIDNumber),
				fmt.Sprintf("Account type: %s", s.payments.BankAccountType),
			},
			ContactEmail: s.payments.ContactEmail,
			ContactPhone: s.payments.ContactWhatsApp,
		}
	case enums.PaymentMethodMobilePayment:
		return &PaymentInstructions{
			Method: method,
			Title:  "Pay by mobile payment",
			Lines: []string{
				fmt.Sprintf("Phone: %s", s.payments.MobilePhone),
				fmt.Sprintf("Bank: %s", s.payments.MobileBank),
				fmt.Sprintf("ID number: %s", s.payments.MobileIDNumber),
			},
			ContactEmail: s.payments.ContactEmail,
			ContactPhone: s.payments.ContactWhatsApp,
		}
	default:
		return nil
	}
}
