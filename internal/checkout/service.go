package checkout

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jdrosales/playmerch-backend/internal/cart"
	"github.com/jdrosales/playmerch-backend/internal/settings"
	"github.com/jdrosales/playmerch-backend/pkg/db"
	"github.com/jdrosales/playmerch-backend/pkg/db/models"
	"github.com/jdrosales/playmerch-backend/pkg/enums"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
	"github.com/jdrosales/playmerch-backend/pkg/logger"
	"github.com/jdrosales/playmerch-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartReader interface {
	Get(ctx context.Context, cartID string) (*cart.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

type instructionsProvider interface {
	PaymentInstructions(method enums.PaymentMethod) *settings.PaymentInstructions
}

// SubmitOrderInput carries the checkout form payload.
type SubmitOrderInput struct {
	Customer      types.CustomerInfo
	PaymentMethod string
	Notes         *string
}

// SubmitOrderResult is returned after the order row is committed.
type SubmitOrderResult struct {
	OrderID             uuid.UUID                     `json:"order_id"`
	OrderNumber         string                        `json:"order_number"`
	Total               decimal.Decimal               `json:"total"`
	PaymentMethod       enums.PaymentMethod           `json:"payment_method"`
	PaymentInstructions *settings.PaymentInstructions `json:"payment_instructions,omitempty"`
}

// Service turns a cart into a frozen order.
type Service interface {
	SubmitOrder(ctx context.Context, cartID string, input SubmitOrderInput) (*SubmitOrderResult, error)
}

type service struct {
	repo     Repository
	tx       txRunner
	carts    cartReader
	numbers  OrderNumberGenerator
	settings instructionsProvider
	validate *validator.Validate
	logg     *logger.Logger
}

// NewService builds a checkout service with the required dependencies.
func NewService(repo Repository, tx txRunner, carts cartReader, numbers OrderNumberGenerator, settings instructionsProvider, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("checkout repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if numbers == nil {
		return nil, fmt.Errorf("order number generator required")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings service required")
	}
	return &service{
		repo:     repo,
		tx:       tx,
		carts:    carts,
		numbers:  numbers,
		settings: settings,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logg:     logg,
	}, nil
}

func (s *service) SubmitOrder(ctx context.Context, cartID string, input SubmitOrderInput) (*SubmitOrderResult, error) {
	if cartID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id required")
	}

	customer := input.Customer.Trimmed()
	if err := s.validate.Struct(customer); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid customer info").
			WithDetails(fieldErrors(err))
	}

	method, err := enums.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method").
			WithDetails(map[string]string{"payment_method": input.PaymentMethod})
	}

	current, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if current.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	order := &models.Order{
		ID:            uuid.New(),
		OrderNumber:   s.numbers.Next(ctx),
		Customer:      customer,
		Total:         current.Total(),
		PaymentMethod: method,
		PaymentStatus: enums.PaymentStatusPending,
		OrderStatus:   enums.OrderStatusNew,
		Notes:         input.Notes,
		Items:         buildItems(current),
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).CreateOrder(ctx, order)
	})
	if err != nil {
		// a colliding order number surfaces as a unique violation; the
		// client retries and draws a fresh number
		if db.IsUniqueViolation(err, "idx_orders_order_number") || db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "order number already taken")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}

	// the cart is cleared only after the order is committed; a failed
	// clear leaves a stale cart behind, which expires on its own
	if err := s.carts.Clear(ctx, cartID); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithOrderID(ctx, order.ID.String()), "clearing cart after checkout failed")
	}

	return &SubmitOrderResult{
		OrderID:             order.ID,
		OrderNumber:         order.OrderNumber,
		Total:               order.Total,
		PaymentMethod:       order.PaymentMethod,
		PaymentInstructions: s.settings.PaymentInstructions(order.PaymentMethod),
	}, nil
}

func buildItems(c *cart.Cart) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c.Items))
	for _, line := range c.Items {
		items = append(items, models.OrderItem{
			ID:           uuid.New(),
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			Quantity:     line.Quantity,
			UnitPrice:    line.EffectiveUnitPrice(),
			VariantLabel: line.VariantLabel,
			MockupImage:  line.MockupImage,
		})
	}
	return items
}

func fieldErrors(err error) map[string]string {
	details := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
	}
	return details
}
