package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	ordersvc "github.com/jdrosales/playmerch-backend/internal/orders"
	"github.com/jdrosales/playmerch-backend/internal/settings"
	"github.com/jdrosales/playmerch-backend/pkg/enums"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
)

type stubOrdersService struct {
	view *ordersvc.OrderView
	err  error

	lastID     string
	lastNumber string
}

func (s *stubOrdersService) GetOrder(_ context.Context, orderID string) (*ordersvc.OrderView, error) {
	s.lastID = orderID
	return s.view, s.err
}

func (s *stubOrdersService) GetOrderByNumber(_ context.Context, orderNumber string) (*ordersvc.OrderView, error) {
	s.lastNumber = orderNumber
	return s.view, s.err
}

func TestOrderConfirmationPending(t *testing.T) {
	orderID := uuid.New()
	svc := &stubOrdersService{
		view: &ordersvc.OrderView{
			ID:            orderID,
			OrderNumber:   "ORD-20250902-007",
			Total:         decimal.RequireFromString("46.50"),
			PaymentMethod: enums.PaymentMethodBankTransfer,
			PaymentStatus: enums.PaymentStatusPending,
			OrderStatus:   enums.OrderStatusNew,
			PaymentInstructions: &settings.PaymentInstructions{
				Method: enums.PaymentMethodBankTransfer,
				Title:  "Bank transfer",
			},
		},
	}
	handler := OrderConfirmation(svc, nil)

	req := requestWithURLParam(http.MethodGet, "/api/v1/orders/"+orderID.String(), "orderId", orderID.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastID != orderID.String() {
		t.Fatalf("expected lookup by %s, got %q", orderID, svc.lastID)
	}

	var envelope struct {
		Data ordersvc.OrderView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.OrderNumber != "ORD-20250902-007" {
		t.Fatalf("unexpected order number: %s", envelope.Data.OrderNumber)
	}
	if envelope.Data.PaymentInstructions == nil {
		t.Fatalf("expected payment instructions for a pending order")
	}
}

func TestOrderConfirmationConfirmedHasNoInstructions(t *testing.T) {
	orderID := uuid.New()
	svc := &stubOrdersService{
		view: &ordersvc.OrderView{
			ID:            orderID,
			OrderNumber:   "ORD-20250902-008",
			PaymentStatus: enums.PaymentStatusConfirmed,
			OrderStatus:   enums.OrderStatusProcessing,
		},
	}
	handler := OrderConfirmation(svc, nil)

	req := requestWithURLParam(http.MethodGet, "/api/v1/orders/"+orderID.String(), "orderId", orderID.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	var envelope struct {
		Data ordersvc.OrderView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.PaymentInstructions != nil {
		t.Fatalf("confirmed order must not carry payment instructions")
	}
}

func TestOrderConfirmationByNumber(t *testing.T) {
	svc := &stubOrdersService{
		view: &ordersvc.OrderView{
			ID:            uuid.New(),
			OrderNumber:   "ORD-20250902-009",
			PaymentStatus: enums.PaymentStatusPending,
			OrderStatus:   enums.OrderStatusNew,
		},
	}
	handler := OrderConfirmationByNumber(svc, nil)

	req := requestWithURLParam(http.MethodGet, "/api/v1/orders/number/ORD-20250902-009", "orderNumber", "ORD-20250902-009")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastNumber != "ORD-20250902-009" {
		t.Fatalf("expected lookup by order number, got %q", svc.lastNumber)
	}

	var envelope struct {
		Data ordersvc.OrderView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.OrderNumber != "ORD-20250902-009" {
		t.Fatalf("unexpected order number: %s", envelope.Data.OrderNumber)
	}
}

func TestOrderConfirmationByNumberMissingParam(t *testing.T) {
	svc := &stubOrdersService{}
	handler := OrderConfirmationByNumber(svc, nil)

	req := requestWithURLParam(http.MethodGet, "/api/v1/orders/number/", "orderNumber", "")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestOrderConfirmationNotFound(t *testing.T) {
	svc := &stubOrdersService{err: pkgerrors.New(pkgerrors.CodeNotFound, "order not found")}
	handler := OrderConfirmation(svc, nil)

	req := requestWithURLParam(http.MethodGet, "/api/v1/orders/"+uuid.NewString(), "orderId", uuid.NewString())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
