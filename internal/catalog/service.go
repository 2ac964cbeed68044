package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jdrosales/playmerch-backend/pkg/enums"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
)

// Service exposes the public storefront catalog. Only active products are
// visible; inactive rows behave as if they do not exist.
type Service interface {
	ListProducts(ctx context.Context, category string, limit int) (*ProductList, error)
	GetProduct(ctx context.Context, productID string) (*ProductView, error)
}

type service struct {
	repo Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// ListProducts returns active products, optionally filtered by category.
// A limit of zero or less returns the full listing.
func (s *service) ListProducts(ctx context.Context, category string, limit int) (*ProductList, error) {
	var filter *enums.ProductCategory
	if category != "" {
		parsed, err := enums.ParseProductCategory(category)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product category").
				WithDetails(map[string]string{"category": category})
		}
		filter = &parsed
	}

	products, err := s.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}

	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}
	return &ProductList{Products: views}, nil
}

func (s *service) GetProduct(ctx context.Context, productID string) (*ProductView, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	view := toProductView(*product)
	return &view, nil
}
