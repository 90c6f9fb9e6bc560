package cartcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-server/pricing"
	"storefront-server/storage"
)

// GET /api/cart/summary
func CartSummary(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		items, err := store.GetCartItems(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart items"})
			return
		}

		details := withProducts(c.Request.Context(), store, items)
		c.JSON(http.StatusOK, pricing.Calculate(details))
	}
}
