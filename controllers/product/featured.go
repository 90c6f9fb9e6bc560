package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-server/storage"
)

const defaultFeaturedLimit = 10

// GET /api/featured-products
func GetFeaturedProducts(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := defaultFeaturedLimit
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = n
		}

		products, err := store.GetFeaturedProducts(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
