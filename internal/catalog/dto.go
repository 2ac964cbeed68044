package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdrosales/playmerch-backend/pkg/db/models"
	"github.com/jdrosales/playmerch-backend/pkg/enums"
)

// VariantView is the variant shape returned by the catalog endpoints.
type VariantView struct {
	ID            uuid.UUID         `json:"id"`
	Label         string            `json:"label"`
	Kind          enums.VariantKind `json:"kind"`
	PriceModifier decimal.Decimal   `json:"price_modifier"`
}

// ProductView is the product shape returned by the catalog endpoints.
type ProductView struct {
	ID             uuid.UUID             `json:"id"`
	Name           string                `json:"name"`
	Category       enums.ProductCategory `json:"category"`
	Price          decimal.Decimal       `json:"price"`
	Description    string                `json:"description"`
	DesignImageURL string                `json:"design_image_url"`
	MockupImages   []string              `json:"mockup_images"`
	Variants       []VariantView         `json:"variants"`
	CreatedAt      time.Time             `json:"created_at"`
}

// ProductList wraps the catalog listing response.
type ProductList struct {
	Products []ProductView `json:"products"`
}

func toProductView(product models.Product) ProductView {
	variants := make([]VariantView, 0, len(product.Variants))
	for _, v := range product.Variants {
		variants = append(variants, VariantView{
			ID:            v.ID,
			Label:         v.Label,
			Kind:          v.Kind,
			PriceModifier: v.PriceModifier,
		})
	}
	return ProductView{
		ID:             product.ID,
		Name:           product.Name,
		Category:       product.Category,
		Price:          product.Price,
		Description:    product.Description,
		DesignImageURL: product.DesignImageURL,
		MockupImages:   append([]string{}, product.MockupImages...),
		Variants:       variants,
		CreatedAt:      product.CreatedAt,
	}
}
