package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdrosales/playmerch-backend/pkg/enums"
	"github.com/jdrosales/playmerch-backend/pkg/types"
)

// Order is the document created at checkout. After creation only
// payment_status, order_status, and updated_at may change, and only by the
// fulfillment process, never by this API.
type Order struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber     string              `gorm:"column:order_number;not null"`
	Customer        types.CustomerInfo  `gorm:"column:customer;type:jsonb;serializer:json"`
	Total           decimal.Decimal     `gorm:"column:total;type:numeric(12,2);not null"`
	PaymentMethod   enums.PaymentMethod `gorm:"column:payment_method;type:payment_method;not null"`
	PaymentStatus   enums.PaymentStatus `gorm:"column:payment_status;type:payment_status;not null;default:'pending'"`
	OrderStatus     enums.OrderStatus   `gorm:"column:order_status;type:order_status;not null;default:'new'"`
	Notes           *string             `gorm:"column:notes"`
	PaymentProofURL *string             `gorm:"column:payment_proof_url"`
	Items           []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
