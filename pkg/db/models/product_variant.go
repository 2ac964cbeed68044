package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdrosales/playmerch-backend/pkg/enums"
)

// ProductVariant is a sub-option of a product (size, color) with an optional
// additive price delta.
type ProductVariant struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID     uuid.UUID         `gorm:"column:product_id;type:uuid;not null"`
	Label         string            `gorm:"column:label;not null"`
	Kind          enums.VariantKind `gorm:"column:kind;type:variant_kind;not null"`
	PriceModifier decimal.Decimal   `gorm:"column:price_modifier;type:numeric(12,2);not null;default:0"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
