package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-server/models"
)

func item(price float64, qty int) models.CartItemDetail {
	return models.CartItemDetail{
		CartItem: models.CartItem{Quantity: qty},
		Product:  &models.Product{Price: price},
	}
}

func TestCalculateDocumentedExample(t *testing.T) {
	// 2 × 100.00 → subtotal 200, 5% discount 10, 10% tax on 190 = 19
	got := Calculate([]models.CartItemDetail{item(100.00, 2)})

	assert.Equal(t, 200.00, got.Subtotal)
	assert.Equal(t, 10.00, got.Discount)
	assert.Equal(t, 19.00, got.Tax)
	assert.Equal(t, 209.00, got.Total)
}

func TestCalculateEmptyCart(t *testing.T) {
	got := Calculate(nil)
	assert.Zero(t, got.Subtotal)
	assert.Zero(t, got.Discount)
	assert.Zero(t, got.Tax)
	assert.Zero(t, got.Total)
}

func TestCalculateRoundsHalfAwayFromZero(t *testing.T) {
	// subtotal 10.30: raw discount 0.515 rounds up to 0.52,
	// raw tax 0.978 rounds to 0.98
	got := Calculate([]models.CartItemDetail{item(10.30, 1)})

	assert.Equal(t, 0.52, got.Discount)
	assert.Equal(t, 0.98, got.Tax)
	assert.InDelta(t, 10.76, got.Total, 1e-9)
}

func TestCalculateSkipsMissingProducts(t *testing.T) {
	items := []models.CartItemDetail{
		item(50.00, 1),
		{CartItem: models.CartItem{Quantity: 3}, Product: nil},
	}
	got := Calculate(items)
	assert.Equal(t, 50.00, got.Subtotal)
}

func TestCalculateMultipleLines(t *testing.T) {
	got := Calculate([]models.CartItemDetail{
		item(99.50, 2),
		item(59.99, 1),
	})
	assert.InDelta(t, 258.99, got.Subtotal, 1e-9)
	assert.Equal(t, 12.95, got.Discount) // 12.9495 rounds to 12.95
	assert.Equal(t, 24.60, got.Tax)      // (258.99-12.95)*0.10 = 24.604
	assert.InDelta(t, 270.64, got.Total, 1e-9)
}
