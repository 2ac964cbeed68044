package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jdrosales/playmerch-backend/internal/settings"
	"github.com/jdrosales/playmerch-backend/pkg/db/models"
	"github.com/jdrosales/playmerch-backend/pkg/enums"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
)

// Service exposes the order confirmation read path. The storefront never
// lists orders; a customer can only fetch the order they just placed by ID.
type Service interface {
	GetOrder(ctx context.Context, orderID string) (*OrderView, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*OrderView, error)
}

type instructionsProvider interface {
	PaymentInstructions(method enums.PaymentMethod) *settings.PaymentInstructions
}

type service struct {
	repo     Repository
	settings instructionsProvider
}

// NewService builds an orders service with the required dependencies.
func NewService(repo Repository, settings instructionsProvider) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings service required")
	}
	return &service{repo: repo, settings: settings}, nil
}

func (s *service) GetOrder(ctx context.Context, orderID string) (*OrderView, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order id")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	return s.present(order), nil
}

// GetOrderByNumber serves the confirmation lookup by the human-facing
// order number printed on the receipt.
func (s *service) GetOrderByNumber(ctx context.Context, orderNumber string) (*OrderView, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order number required")
	}

	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	return s.present(order), nil
}

func (s *service) present(order *models.Order) *OrderView {
	// instructions are shown only while the payment is outstanding
	var instructions *settings.PaymentInstructions
	if order.PaymentStatus == enums.PaymentStatusPending {
		instructions = s.settings.PaymentInstructions(order.PaymentMethod)
	}

	view := toOrderView(*order, instructions)
	return &view
}
