package routes

import (
	"github.com/gin-gonic/gin"

	authcontroller "storefront-server/controllers/auth"
	"storefront-server/middleware"
	"storefront-server/storage"
)

// SetupAuthRoutes registers signup, login and the current-user lookup.
func SetupAuthRoutes(r *gin.Engine, store storage.Storage) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authcontroller.Register(store))
		auth.POST("/login", authcontroller.Login(store))
		auth.GET("/me", middleware.ValidateToken, authcontroller.Me(store))
	}
}
