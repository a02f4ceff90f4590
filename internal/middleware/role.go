package middleware

import (
	"net/http"

	"rentaldesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireStaff ensures the authenticated caller has the staff flag.
// Must run after TokenExtractor.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("staff") {
			response.Error(c, http.StatusForbidden, "Staff access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin ensures the authenticated caller has the admin flag.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("admin") {
			response.Error(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
