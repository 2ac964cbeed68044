package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one entry in a cart. It snapshots the product fields at the time
// the item was added so the cart stays stable if the catalog changes.
type Line struct {
	ProductID     uuid.UUID       `json:"product_id"`
	ProductName   string          `json:"product_name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	VariantID     *uuid.UUID      `json:"variant_id,omitempty"`
	VariantLabel  *string         `json:"variant_label,omitempty"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
	MockupImage   string          `json:"mockup_image"`
	Quantity      int             `json:"quantity"`
}

// EffectiveUnitPrice is the base price plus the variant modifier.
func (l Line) EffectiveUnitPrice() decimal.Decimal {
	return l.UnitPrice.Add(l.PriceModifier)
}

// LineTotal is the effective unit price multiplied by quantity.
func (l Line) LineTotal() decimal.Decimal {
	return l.EffectiveUnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// matches reports whether the line holds the same product/variant pair.
// Lines with different variants of the same product stay separate.
func (l Line) matches(productID uuid.UUID, variantID *uuid.UUID) bool {
	if l.ProductID != productID {
		return false
	}
	if l.VariantID == nil && variantID == nil {
		return true
	}
	if l.VariantID == nil || variantID == nil {
		return false
	}
	return *l.VariantID == *variantID
}

// Cart is the persisted cart document keyed by the cart session ID.
type Cart struct {
	ID        string    `json:"id"`
	Items     []Line    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Total sums every line total.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Items {
		total = total.Add(line.LineTotal())
	}
	return total
}

// ItemCount sums the quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Items {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
