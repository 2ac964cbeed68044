package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jdrosales/playmerch-backend/pkg/db/models"
	"github.com/jdrosales/playmerch-backend/pkg/enums"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
)

type stubFinder struct {
	products map[uuid.UUID]*models.Product
}

func (s *stubFinder) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if product, ok := s.products[id]; ok {
		return product, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestService(t *testing.T, products ...*models.Product) (Service, *stubFinder) {
	t.Helper()

	finder := &stubFinder{products: map[uuid.UUID]*models.Product{}}
	for _, product := range products {
		finder.products[product.ID] = product
	}
	svc, err := NewService(NewMemoryStore(), finder)
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc, finder
}

func mugProduct() *models.Product {
	productID := uuid.New()
	return &models.Product{
		ID:           productID,
		Name:         "Jett Mug",
		Category:     enums.ProductCategoryMugs,
		Price:        decimal.NewFromFloat(12.50),
		MockupImages: []string{"https://img/mug.png"},
		IsActive:     true,
		Variants: []models.ProductVariant{
			{ID: uuid.New(), ProductID: productID, Label: "White", Kind: enums.VariantKindColor, PriceModifier: decimal.Zero},
			{ID: uuid.New(), ProductID: productID, Label: "Black", Kind: enums.VariantKindColor, PriceModifier: decimal.NewFromFloat(1.50)},
		},
	}
}

func TestGetUnknownCartReturnsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	cart, err := svc.Get(context.Background(), "cart-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart, got %d items", len(cart.Items))
	}
	if !cart.Total().Equal(decimal.Zero) {
		t.Fatalf("expected zero total, got %s", cart.Total())
	}
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	product := mugProduct()
	svc, _ := newTestService(t, product)

	cart, err := svc.AddItem(context.Background(), "cart-1", AddItemInput{
		ProductID: product.ID.String(),
		Quantity:  2,
	})
	if err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Items))
	}

	line := cart.Items[0]
	if line.ProductName != "Jett Mug" {
		t.Fatalf("expected product name snapshot, got %q", line.ProductName)
	}
	if line.MockupImage != "https://img/mug.png" {
		t.Fatalf("expected first mockup image, got %q", line.MockupImage)
	}
	if !cart.Total().Equal(decimal.NewFromFloat(25.00)) {
		t.Fatalf("expected total 25.00, got %s", cart.Total())
	}
}

func TestAddItemMergesSameProductAndVariant(t *testing.T) {
	product := mugProduct()
	svc, _ := newTestService(t, product)
	ctx := context.Background()
	variantID := product.Variants[1].ID.String()

	if _, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: product.ID.String(), VariantID: &variantID, Quantity: 1}); err != nil {
		t.Fatalf("first AddItem returned error: %v", err)
	}
	cart, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: product.ID.String(), VariantID: &variantID, Quantity: 2})
	if err != nil {
		t.Fatalf("second AddItem returned error: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", cart.Items[0].Quantity)
	}
	// 12.50 + 1.50 modifier, times 3
	if !cart.Total().Equal(decimal.NewFromFloat(42.00)) {
		t.Fatalf("expected total 42.00, got %s", cart.Total())
	}
}

func TestAddItemKeepsVariantsAsSeparateLines(t *testing.T) {
	product := mugProduct()
	svc, _ := newTestService(t, product)
	ctx := context.Background()
	variantID := product.Variants[0].ID.String()

	if _, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: product.ID.String(), Quantity: 1}); err != nil {
		t.Fatalf("AddItem without variant returned error: %v", err)
	}
	cart, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: product.ID.String(), VariantID: &variantID, Quantity: 1})
	if err != nil {
		t.Fatalf("AddItem with variant returned error: %v", err)
	}

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Items))
	}
	if cart.ItemCount() != 2 {
		t.Fatalf("expected item count 2, got %d", cart.ItemCount())
	}
}

func TestAddItemRejectsForeignVariant(t *testing.T) {
	product := mugProduct()
	svc, _ := newTestService(t, product)
	foreign := uuid.NewString()

	_, err := svc.AddItem(context.Background(), "cart-1", AddItemInput{
		ProductID: product.ID.String(),
		VariantID: &foreign,
		Quantity:  1,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddItemRejectsInactiveProduct(t *testing.T) {
	product := mugProduct()
	product.IsActive = false
	svc, _ := newTestService(t, product)

	_, err := svc.AddItem(context.Background(), "cart-1", AddItemInput{ProductID: product.ID.String(), Quantity: 1})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestAddItemRejectsZeroQuantity(t *testing.T) {
	product := mugProduct()
	svc, _ := newTestService(t, product)

	_, err := svc.AddItem(context.Background(), "cart-1", AddItemInput{ProductID: product.ID.String(), Quantity: 0})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateQuantityReplacesValue(t *testing.T) {
	product := mugProduct()
	svc, _ := newTestService(t, product)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: product.ID.String(), Quantity: 1}); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	cart, err := svc.UpdateQuantity(ctx, "cart-1", product.ID.String(), nil, 5)
	if err != nil {
		t.Fatalf("UpdateQuantity returned error: %v", err)
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestUpdateQuantityRejectsBelowOne(t *testing.T) {
	product := mugProduct()
	svc, _ := newTestService(t, product)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: product.ID.String(), Quantity: 2}); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	_, err := svc.UpdateQuantity(ctx, "cart-1", product.ID.String(), nil, 0)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	// the line is untouched
	cart, err := svc.Get(ctx, "cart-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity to stay 2, got %d", cart.Items[0].Quantity)
	}
}

func TestUpdateQuantityMissingLineNotFound(t *testing.T) {
	product := mugProduct()
	svc, _ := newTestService(t, product)

	_, err := svc.UpdateQuantity(context.Background(), "cart-1", product.ID.String(), nil, 2)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestRemoveItemDropsOnlyMatchingLine(t *testing.T) {
	product := mugProduct()
	svc, _ := newTestService(t, product)
	ctx := context.Background()
	variantID := product.Variants[0].ID.String()

	if _, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: product.ID.String(), Quantity: 1}); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if _, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: product.ID.String(), VariantID: &variantID, Quantity: 1}); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	cart, err := svc.RemoveItem(ctx, "cart-1", product.ID.String(), nil)
	if err != nil {
		t.Fatalf("RemoveItem returned error: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line remaining, got %d", len(cart.Items))
	}
	if cart.Items[0].VariantID == nil {
		t.Fatalf("expected variant line to remain")
	}
}

func TestRemoveItemAbsentLineIsNoop(t *testing.T) {
	product := mugProduct()
	svc, _ := newTestService(t, product)

	cart, err := svc.RemoveItem(context.Background(), "cart-1", product.ID.String(), nil)
	if err != nil {
		t.Fatalf("RemoveItem returned error: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart")
	}
}

func TestClearDeletesDocument(t *testing.T) {
	product := mugProduct()
	svc, _ := newTestService(t, product)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: product.ID.String(), Quantity: 1}); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if err := svc.Clear(ctx, "cart-1"); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	cart, err := svc.Get(ctx, "cart-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected cart to be empty after clear")
	}
}
