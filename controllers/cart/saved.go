package cartcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-server/storage"
)

// GET /api/saved-items
func GetSavedItems(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		items, err := store.GetSavedItems(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved items"})
			return
		}
		c.JSON(http.StatusOK, withProducts(c.Request.Context(), store, items))
	}
}

// POST /api/cart/:id/save-for-later
func SaveForLater(store storage.Storage) gin.HandlerFunc {
	return flipSavedForLater(store, true, "Cart item not found")
}

// POST /api/saved-items/:id/move-to-cart
//
// Moving back does not merge with an existing active row for the same
// product; the cart listing simply shows both rows.
func MoveToCart(store storage.Storage) gin.HandlerFunc {
	return flipSavedForLater(store, false, "Saved item not found")
}

func flipSavedForLater(store storage.Storage, saved bool, notFoundMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUserID(c); !ok {
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		flip := store.SaveForLater
		if !saved {
			flip = store.MoveToCart
		}

		updated, err := flip(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}
		c.JSON(http.StatusOK, withProduct(c.Request.Context(), store, *updated))
	}
}
