// Package pricing derives cart totals from the current active line items.
// Totals are recomputed on every read and never persisted.
package pricing

import (
	"math"

	"storefront-server/models"
)

const (
	// PromoRate is the flat promotional discount applied to the subtotal.
	PromoRate = 0.05
	// TaxRate is applied to the subtotal after the promotional discount.
	TaxRate = 0.10
)

type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Calculate computes the order summary for a cart snapshot. Items without
// a resolvable product contribute nothing to the subtotal. Discount and
// tax are each rounded to cents, half away from zero; subtotal and total
// are plain sums of those figures.
func Calculate(items []models.CartItemDetail) Summary {
	var subtotal float64
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		subtotal += item.Product.Price * float64(item.Quantity)
	}

	discount := round2(subtotal * PromoRate)
	tax := round2((subtotal - discount) * TaxRate)

	return Summary{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    subtotal - discount + tax,
	}
}

// math.Round rounds half away from zero, which is exactly the rule here.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
