package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	categorycontroller "storefront-server/controllers/category"
	productcontroller "storefront-server/controllers/product"
	"storefront-server/storage"
)

// SetupPublicRoutes registers the catalog read endpoints.
func SetupPublicRoutes(r *gin.Engine, store storage.Storage) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/products", productcontroller.GetProducts(store))
		api.GET("/products/slug/:slug", productcontroller.GetProductBySlug(store))
		api.GET("/products/:id", productcontroller.GetProductByID(store))
		api.GET("/products/:id/related", productcontroller.GetRelatedProducts(store))
		api.GET("/featured-products", productcontroller.GetFeaturedProducts(store))

		api.GET("/categories", categorycontroller.GetCategories(store))
		api.GET("/categories/slug/:slug", categorycontroller.GetCategoryBySlug(store))
		api.GET("/categories/:id", categorycontroller.GetCategoryByID(store))
	}
}
