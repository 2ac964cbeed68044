package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jdrosales/playmerch-backend/pkg/db/models"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
)

// ProductFinder loads the catalog rows needed to snapshot a cart line.
type ProductFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// AddItemInput carries the payload for adding a product to a cart.
type AddItemInput struct {
	ProductID string
	VariantID *string
	Quantity  int
}

// Service mutates and reads cart documents. All operations load, mutate,
// and save the full document; the cart is small enough that this is fine.
type Service interface {
	Get(ctx context.Context, cartID string) (*Cart, error)
	AddItem(ctx context.Context, cartID string, input AddItemInput) (*Cart, error)
	UpdateQuantity(ctx context.Context, cartID, productID string, variantID *string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, cartID, productID string, variantID *string) (*Cart, error)
	Clear(ctx context.Context, cartID string) error
}

type service struct {
	store    Persistence
	products ProductFinder
	now      func() time.Time
}

// NewService builds a cart service with the required dependencies.
func NewService(store Persistence, products ProductFinder) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart persistence required")
	}
	if products == nil {
		return nil, fmt.Errorf("product finder required")
	}
	return &service{store: store, products: products, now: time.Now}, nil
}

func (s *service) Get(ctx context.Context, cartID string) (*Cart, error) {
	if cartID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id required")
	}

	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &Cart{ID: cartID, Items: []Line{}}, nil
	}
	return cart, nil
}

func (s *service) AddItem(ctx context.Context, cartID string, input AddItemInput) (*Cart, error) {
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id")
	}

	var variantID *uuid.UUID
	if input.VariantID != nil {
		parsed, err := uuid.Parse(*input.VariantID)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid variant id")
		}
		variantID = &parsed
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	var variant *models.ProductVariant
	if variantID != nil {
		for i := range product.Variants {
			if product.Variants[i].ID == *variantID {
				variant = &product.Variants[i]
				break
			}
		}
		if variant == nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant does not belong to product")
		}
	}

	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].matches(productID, variantID) {
			cart.Items[i].Quantity += input.Quantity
			merged = true
			break
		}
	}
	if !merged {
		line := Line{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    input.Quantity,
		}
		if len(product.MockupImages) > 0 {
			line.MockupImage = product.MockupImages[0]
		}
		if variant != nil {
			id := variant.ID
			label := variant.Label
			line.VariantID = &id
			line.VariantLabel = &label
			line.PriceModifier = variant.PriceModifier
		}
		cart.Items = append(cart.Items, line)
	}

	return s.persist(ctx, cart)
}

func (s *service) UpdateQuantity(ctx context.Context, cartID, productID string, variantID *string, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	pid, vid, err := parseLineKey(productID, variantID)
	if err != nil {
		return nil, err
	}

	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Items {
		if cart.Items[i].matches(pid, vid) {
			cart.Items[i].Quantity = quantity
			return s.persist(ctx, cart)
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
}

func (s *service) RemoveItem(ctx context.Context, cartID, productID string, variantID *string) (*Cart, error) {
	pid, vid, err := parseLineKey(productID, variantID)
	if err != nil {
		return nil, err
	}

	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	for _, line := range cart.Items {
		if !line.matches(pid, vid) {
			kept = append(kept, line)
		}
	}
	cart.Items = kept

	return s.persist(ctx, cart)
}

func (s *service) Clear(ctx context.Context, cartID string) error {
	if cartID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart id required")
	}
	return s.store.Delete(ctx, cartID)
}

func (s *service) persist(ctx context.Context, cart *Cart) (*Cart, error) {
	cart.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func parseLineKey(productID string, variantID *string) (uuid.UUID, *uuid.UUID, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return uuid.Nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id")
	}
	if variantID == nil {
		return pid, nil, nil
	}
	vid, err := uuid.Parse(*variantID)
	if err != nil {
		return uuid.Nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid variant id")
	}
	return pid, &vid, nil
}
