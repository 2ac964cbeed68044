package checkout

import (
	"context"

	"gorm.io/gorm"

	"github.com/jdrosales/playmerch-backend/pkg/db/models"
)

// Repository defines the single write operation of the checkout flow.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a checkout repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateOrder(ctx context.Context, order *models.Order) error {
	// items are created in the same insert through the association
	return r.db.WithContext(ctx).Create(order).Error
}
