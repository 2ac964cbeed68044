package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/jdrosales/playmerch-backend/pkg/enums"
)

// Product represents a catalog listing. Rows are read-only to this service;
// the catalog is maintained out of band.
type Product struct {
	ID             uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name           string                `gorm:"column:name;not null"`
	Category       enums.ProductCategory `gorm:"column:category;type:product_category;not null"`
	Price          decimal.Decimal       `gorm:"column:price;type:numeric(12,2);not null"`
	Description    string                `gorm:"column:description;not null;default:''"`
	DesignImageURL string                `gorm:"column:design_image_url;not null;default:''"`
	MockupImages   pq.StringArray        `gorm:"column:mockup_images;type:text[];not null;default:ARRAY[]::text[]"`
	IsActive       bool                  `gorm:"column:is_active;not null;default:true"`
	Variants       []ProductVariant      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
