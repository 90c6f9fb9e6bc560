package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-server/storage"
)

// GET /api/products
func GetProducts(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q storage.ProductQuery

		if v := c.Query("categoryId"); v != "" {
			id, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoryId"})
				return
			}
			categoryID := uint(id)
			q.CategoryID = &categoryID
		}
		if v := c.Query("featured"); v != "" {
			featured, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid featured flag"})
				return
			}
			q.Featured = &featured
		}
		q.Search = c.Query("search")
		if v := c.Query("minPrice"); v != "" {
			minPrice, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
				return
			}
			q.MinPrice = &minPrice
		}
		if v := c.Query("maxPrice"); v != "" {
			maxPrice, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
				return
			}
			q.MaxPrice = &maxPrice
		}
		if v := c.Query("inStock"); v != "" {
			inStock, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inStock flag"})
				return
			}
			q.InStock = &inStock
		}

		q.SortBy = c.Query("sortBy")
		q.SortOrder = strings.ToLower(c.DefaultQuery("sortOrder", "asc"))
		if q.SortOrder != "asc" && q.SortOrder != "desc" {
			q.SortOrder = "asc"
		}

		if v := c.Query("limit"); v != "" {
			limit, err := strconv.Atoi(v)
			if err != nil || limit < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			q.Limit = &limit
		}
		if v := c.Query("offset"); v != "" {
			offset, err := strconv.Atoi(v)
			if err != nil || offset < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset"})
				return
			}
			q.Offset = offset
		}

		products, err := store.GetProducts(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
