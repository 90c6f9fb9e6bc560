package routes

import (
	"github.com/gin-gonic/gin"

	"storefront-server/storage"
)

// SetupRoutes is the single entry point that wires up the public catalog,
// auth, user cart, and admin route groups.
func SetupRoutes(r *gin.Engine, store storage.Storage) {
	// Public catalog reads (no middleware)
	SetupPublicRoutes(r, store)

	// Signup / login
	SetupAuthRoutes(r, store)

	// Cart routes (JWT-protected)
	SetupCartRoutes(r, store)

	// Admin catalog writes (API-key-protected)
	SetupAdminRoutes(r, store)
}
