package cartcontroller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-server/models"
	"storefront-server/storage"
)

// currentUserID reads the user id the auth middleware resolved for this
// request.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	userID, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// withProduct joins a cart row with its product. The product is
// enrichment: if the lookup fails the row is returned with a nil product
// instead of failing the request.
func withProduct(ctx context.Context, store storage.Storage, item models.CartItem) models.CartItemDetail {
	detail := models.CartItemDetail{CartItem: item}
	product, err := store.GetProductByID(ctx, item.ProductID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("cart: failed to load product %d: %v", item.ProductID, err)
		}
		return detail
	}
	detail.Product = product
	return detail
}

func withProducts(ctx context.Context, store storage.Storage, items []models.CartItem) []models.CartItemDetail {
	details := make([]models.CartItemDetail, 0, len(items))
	for _, item := range items {
		details = append(details, withProduct(ctx, store, item))
	}
	return details
}

// GET /api/cart
func GetUserCart(store storage.Storage) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, withProducts(c.Request.Context(), store, items))
	}
}

type AddToCartInput struct {
	ProductID     uint `json:"productId" binding:"required"`
	Quantity      int  `json:"quantity"`
	SavedForLater bool `json:"savedForLater"`
}

// POST /api/cart
func AddToCart(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}
		if input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity value"})
			return
		}

		if _, err := store.GetProductByID(c.Request.Context(), input.ProductID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		item := models.CartItem{
			UserID:        userID,
			ProductID:     input.ProductID,
			Quantity:      input.Quantity,
			SavedForLater: input.SavedForLater,
		}
		if err := store.AddToCart(c.Request.Context(), &item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, withProduct(c.Request.Context(), store, item))
	}
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PUT /api/cart/:id
func UpdateCartItem(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUserID(c); !ok {
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity value"})
			return
		}
		if input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity value"})
			return
		}

		item, err := store.UpdateCartItem(c.Request.Context(), uint(id), input.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			case errors.Is(err, storage.ErrInvalidQuantity):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity value"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			}
			return
		}
		c.JSON(http.StatusOK, withProduct(c.Request.Context(), store, *item))
	}
}

// DELETE /api/cart/:id
func RemoveFromCart(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUserID(c); !ok {
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		if err := store.RemoveFromCart(c.Request.Context(), uint(id)); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully"})
	}
}

// DELETE /api/cart
func ClearUserCart(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		if err := store.ClearCart(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
	}
}
