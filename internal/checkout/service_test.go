package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jdrosales/playmerch-backend/internal/cart"
	"github.com/jdrosales/playmerch-backend/internal/settings"
	"github.com/jdrosales/playmerch-backend/pkg/db/models"
	"github.com/jdrosales/playmerch-backend/pkg/enums"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
	"github.com/jdrosales/playmerch-backend/pkg/types"
)

type stubRepo struct {
	created *models.Order
	err     error
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	if s.err != nil {
		return s.err
	}
	s.created = order
	return nil
}

type stubTx struct{}

func (stubTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubCarts struct {
	cart       *cart.Cart
	getErr     error
	clearErr   error
	clearCalls int
}

func (s *stubCarts) Get(ctx context.Context, cartID string) (*cart.Cart, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.cart == nil {
		return &cart.Cart{ID: cartID, Items: []cart.Line{}}, nil
	}
	return s.cart, nil
}

func (s *stubCarts) Clear(ctx context.Context, cartID string) error {
	s.clearCalls++
	return s.clearErr
}

type stubNumbers struct{ value string }

func (s stubNumbers) Next(ctx context.Context) string { return s.value }

type stubSettings struct{}

func (stubSettings) PaymentInstructions(method enums.PaymentMethod) *settings.PaymentInstructions {
	return &settings.PaymentInstructions{Method: method, Title: "pay here"}
}

func validCustomer() types.CustomerInfo {
	return types.CustomerInfo{
		Name:    "Ana Diaz",
		Email:   "ana@example.com",
		Phone:   "0414-0000000",
		Address: "Calle 1",
		City:    "Caracas",
		State:   "DC",
	}
}

func filledCart() *cart.Cart {
	label := "Black"
	variantID := uuid.New()
	return &cart.Cart{
		ID: "cart-1",
		Items: []cart.Line{
			{
				ProductID:   uuid.New(),
				ProductName: "Jett Mug",
				UnitPrice:   decimal.NewFromFloat(12.50),
				Quantity:    2,
			},
			{
				ProductID:     uuid.New(),
				ProductName:   "Phoenix Shirt",
				UnitPrice:     decimal.NewFromFloat(20.00),
				VariantID:     &variantID,
				VariantLabel:  &label,
				PriceModifier: decimal.NewFromFloat(1.50),
				Quantity:      1,
			},
		},
	}
}

func newCheckoutService(t *testing.T, repo *stubRepo, carts *stubCarts) Service {
	t.Helper()

	svc, err := NewService(repo, stubTx{}, carts, stubNumbers{value: "ORD-20260829-001"}, stubSettings{}, nil)
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc
}

func TestSubmitOrderCreatesFrozenOrder(t *testing.T) {
	repo := &stubRepo{}
	carts := &stubCarts{cart: filledCart()}
	svc := newCheckoutService(t, repo, carts)

	result, err := svc.SubmitOrder(context.Background(), "cart-1", SubmitOrderInput{
		Customer:      validCustomer(),
		PaymentMethod: "bank_transfer",
	})
	if err != nil {
		t.Fatalf("SubmitOrder returned error: %v", err)
	}

	if repo.created == nil {
		t.Fatalf("expected order to be created")
	}
	if result.OrderNumber != "ORD-20260829-001" {
		t.Fatalf("unexpected order number %q", result.OrderNumber)
	}
	if repo.created.PaymentStatus != enums.PaymentStatusPending {
		t.Fatalf("expected pending payment status, got %s", repo.created.PaymentStatus)
	}
	if repo.created.OrderStatus != enums.OrderStatusNew {
		t.Fatalf("expected new order status, got %s", repo.created.OrderStatus)
	}
	if len(repo.created.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(repo.created.Items))
	}

	// the variant line freezes the effective unit price
	if !repo.created.Items[1].UnitPrice.Equal(decimal.NewFromFloat(21.50)) {
		t.Fatalf("expected unit price 21.50, got %s", repo.created.Items[1].UnitPrice)
	}
	// order total equals the sum of frozen line totals, exactly
	if !result.Total.Equal(decimal.NewFromFloat(46.50)) {
		t.Fatalf("expected total 46.50, got %s", result.Total)
	}
	if carts.clearCalls != 1 {
		t.Fatalf("expected cart to be cleared once, got %d", carts.clearCalls)
	}
	if result.PaymentInstructions == nil {
		t.Fatalf("expected payment instructions in result")
	}
}

func TestSubmitOrderRejectsEmptyCart(t *testing.T) {
	repo := &stubRepo{}
	carts := &stubCarts{}
	svc := newCheckoutService(t, repo, carts)

	_, err := svc.SubmitOrder(context.Background(), "cart-1", SubmitOrderInput{
		Customer:      validCustomer(),
		PaymentMethod: "gateway",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.created != nil {
		t.Fatalf("expected no order for empty cart")
	}
}

func TestSubmitOrderRejectsInvalidCustomer(t *testing.T) {
	repo := &stubRepo{}
	carts := &stubCarts{cart: filledCart()}
	svc := newCheckoutService(t, repo, carts)

	customer := validCustomer()
	customer.Email = "not-an-email"

	_, err := svc.SubmitOrder(context.Background(), "cart-1", SubmitOrderInput{
		Customer:      customer,
		PaymentMethod: "gateway",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || details["Email"] == "" {
		t.Fatalf("expected email field error, got %v", typed.Details())
	}
}

func TestSubmitOrderTrimsCustomerFields(t *testing.T) {
	repo := &stubRepo{}
	carts := &stubCarts{cart: filledCart()}
	svc := newCheckoutService(t, repo, carts)

	customer := validCustomer()
	customer.Name = "  Ana Diaz  "

	if _, err := svc.SubmitOrder(context.Background(), "cart-1", SubmitOrderInput{
		Customer:      customer,
		PaymentMethod: "gateway",
	}); err != nil {
		t.Fatalf("SubmitOrder returned error: %v", err)
	}
	if repo.created.Customer.Name != "Ana Diaz" {
		t.Fatalf("expected trimmed name, got %q", repo.created.Customer.Name)
	}
}

func TestSubmitOrderRejectsUnknownPaymentMethod(t *testing.T) {
	repo := &stubRepo{}
	carts := &stubCarts{cart: filledCart()}
	svc := newCheckoutService(t, repo, carts)

	_, err := svc.SubmitOrder(context.Background(), "cart-1", SubmitOrderInput{
		Customer:      validCustomer(),
		PaymentMethod: "cash",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitOrderKeepsCartOnCreateFailure(t *testing.T) {
	repo := &stubRepo{err: errors.New("insert failed")}
	carts := &stubCarts{cart: filledCart()}
	svc := newCheckoutService(t, repo, carts)

	_, err := svc.SubmitOrder(context.Background(), "cart-1", SubmitOrderInput{
		Customer:      validCustomer(),
		PaymentMethod: "gateway",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if carts.clearCalls != 0 {
		t.Fatalf("expected cart to survive a failed checkout")
	}
}

func TestSubmitOrderMapsDuplicateOrderNumberToConflict(t *testing.T) {
	repo := &stubRepo{err: errors.New(`duplicate key value violates unique constraint "idx_orders_order_number"`)}
	carts := &stubCarts{cart: filledCart()}
	svc := newCheckoutService(t, repo, carts)

	_, err := svc.SubmitOrder(context.Background(), "cart-1", SubmitOrderInput{
		Customer:      validCustomer(),
		PaymentMethod: "gateway",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if carts.clearCalls != 0 {
		t.Fatalf("expected cart to survive a rejected order number")
	}
}
