package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdrosales/playmerch-backend/internal/settings"
	"github.com/jdrosales/playmerch-backend/pkg/db/models"
	"github.com/jdrosales/playmerch-backend/pkg/enums"
	"github.com/jdrosales/playmerch-backend/pkg/types"
)

// ItemView is the frozen line item shape returned on the confirmation page.
type ItemView struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LineTotal    decimal.Decimal `json:"line_total"`
	VariantLabel *string         `json:"variant_label,omitempty"`
	MockupImage  string          `json:"mockup_image,omitempty"`
}

// OrderView is the order confirmation payload. PaymentInstructions is set
// only while the payment is still pending.
type OrderView struct {
	ID                  uuid.UUID                     `json:"id"`
	OrderNumber         string                        `json:"order_number"`
	Customer            types.CustomerInfo            `json:"customer"`
	Items               []ItemView                    `json:"items"`
	Total               decimal.Decimal               `json:"total"`
	PaymentMethod       enums.PaymentMethod           `json:"payment_method"`
	PaymentStatus       enums.PaymentStatus           `json:"payment_status"`
	OrderStatus         enums.OrderStatus             `json:"order_status"`
	Notes               *string                       `json:"notes,omitempty"`
	PaymentInstructions *settings.PaymentInstructions `json:"payment_instructions,omitempty"`
	CreatedAt           time.Time                     `json:"created_at"`
}

func toOrderView(order models.Order, instructions *settings.PaymentInstructions) OrderView {
	items := make([]ItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, ItemView{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			LineTotal:    item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
			VariantLabel: item.VariantLabel,
			MockupImage:  item.MockupImage,
		})
	}
	return OrderView{
		ID:                  order.ID,
		OrderNumber:         order.OrderNumber,
		Customer:            order.Customer,
		Items:               items,
		Total:               order.Total,
		PaymentMethod:       order.PaymentMethod,
		PaymentStatus:       order.PaymentStatus,
		OrderStatus:         order.OrderStatus,
		Notes:               order.Notes,
		PaymentInstructions: instructions,
		CreatedAt:           order.CreatedAt,
	}
}
