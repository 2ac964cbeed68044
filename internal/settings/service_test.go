package settings

import (
	"strings"
	"testing"

	"github.com/jdrosales/playmerch-backend/pkg/config"
	"github.com/jdrosales/playmerch-backend/pkg/enums"
)

func testPaymentsConfig() config.PaymentsConfig {
	return config.PaymentsConfig{
		GatewayCheckoutURL: "https://pay.example.com/checkout",
		BankName:           "Banco Nacional",
		BankAccountHolder:  "PlayMerch C.A.",
		BankAccountNumber:  "0102-0000-0000-0000",
		BankIDNumber:       "J-12345678-9",
		BankAccountType:    "checking",
		MobilePhone:        "0414-0000000",
		MobileBank:         "Banco Nacional",
		MobileIDNumber:     "J-12345678-9",
		ContactEmail:       "orders@playmerch.example",
		ContactWhatsApp:    "+58-414-0000000",
	}
}

func TestPaymentInstructionsPerMethod(t *testing.T) {
	svc := NewService(testPaymentsConfig())

	gateway := svc.PaymentInstructions(enums.PaymentMethodGateway)
	if gateway == nil || gateway.CheckoutURL != "https://pay.example.com/checkout" {
		t.Fatalf("expected gateway checkout url, got %+v", gateway)
	}

	bank := svc.PaymentInstructions(enums.PaymentMethodBankTransfer)
	if bank == nil || len(bank.Lines) == 0 {
		t.Fatalf("expected bank transfer lines, got %+v", bank)
	}
	joined := strings.Join(bank.Lines, "\n")
	if !strings.Contains(joined, "Banco Nacional") || !strings.Contains(joined, "0102-0000-0000-0000") {
		t.Fatalf("expected bank details in lines, got %q", joined)
	}

	mobile := svc.PaymentInstructions(enums.PaymentMethodMobilePayment)
	if mobile == nil || !strings.Contains(strings.Join(mobile.Lines, "\n"), "0414-0000000") {
		t.Fatalf("expected mobile phone in lines, got %+v", mobile)
	}
}

func TestPaymentInstructionsUnknownMethodIsNil(t *testing.T) {
	svc := NewService(testPaymentsConfig())
	if got := svc.PaymentInstructions(enums.PaymentMethod("cash")); got != nil {
		t.Fatalf("expected nil for unknown method, got %+v", got)
	}
}

func TestPaymentMethodsListsAllSupported(t *testing.T) {
	svc := NewService(testPaymentsConfig())
	methods := svc.PaymentMethods()
	if len(methods) != 3 {
		t.Fatalf("expected 3 methods, got %d", len(methods))
	}
}
