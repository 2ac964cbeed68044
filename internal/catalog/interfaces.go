package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jdrosales/playmerch-backend/pkg/db/models"
	"github.com/jdrosales/playmerch-backend/pkg/enums"
)

// Repository defines read operations over the product tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListActive(ctx context.Context, category *enums.ProductCategory) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}
