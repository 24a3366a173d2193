package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assistec/internal/models"
)

// RequireOwner blocks any request whose token does not carry the owner
// role. Consultants can read and write the ledger but never reach the
// credential vault or user management.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		role, ok := value.(models.AdminRole)
		if !exists || !ok || role != models.AdminRoleOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "Owner access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
