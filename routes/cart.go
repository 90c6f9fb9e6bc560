package routes

import (
	"github.com/gin-gonic/gin"

	cartcontroller "storefront-server/controllers/cart"
	"storefront-server/middleware"
	"storefront-server/storage"
)

// SetupCartRoutes registers all cart and saved-items endpoints. Every
// route resolves the acting user from the JWT, never from a constant.
func SetupCartRoutes(r *gin.Engine, store storage.Storage) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken)
	{
		api.GET("/cart", cartcontroller.GetUserCart(store))
		api.GET("/cart/summary", cartcontroller.CartSummary(store))
		api.POST("/cart", cartcontroller.AddToCart(store))
		api.PUT("/cart/:id", cartcontroller.UpdateCartItem(store))
		api.DELETE("/cart/:id", cartcontroller.RemoveFromCart(store))
		api.DELETE("/cart", cartcontroller.ClearUserCart(store))
		api.POST("/cart/:id/save-for-later", cartcontroller.SaveForLater(store))

		api.GET("/saved-items", cartcontroller.GetSavedItems(store))
		api.POST("/saved-items/:id/move-to-cart", cartcontroller.MoveToCart(store))
	}
}
