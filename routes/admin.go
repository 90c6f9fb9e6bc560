package routes

import (
	"github.com/gin-gonic/gin"

	categorycontroller "storefront-server/controllers/category"
	productcontroller "storefront-server/controllers/product"
	"storefront-server/middleware"
	"storefront-server/storage"
)

// SetupAdminRoutes registers the catalog write endpoints.
func SetupAdminRoutes(r *gin.Engine, store storage.Storage) {
	api := r.Group("/api")
	api.Use(middleware.ValidateAPIKey)
	{
		api.POST("/products", productcontroller.CreateProduct(store))
		api.PUT("/products/:id", productcontroller.UpdateProduct(store))
		api.DELETE("/products/:id", productcontroller.DeleteProduct(store))

		api.POST("/categories", categorycontroller.CreateCategory(store))
	}
}
