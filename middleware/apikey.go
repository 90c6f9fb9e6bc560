package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-server/config"
)

// ValidateAPIKey guards the admin catalog endpoints.
func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey == "" || apiKey != config.AppConfig.AdminAPIKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
