package middleware

import (
	"net/http"
	"strings"

	"rentaldesk/internal/pkg/response"

	jwtsvc "rentaldesk/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenExtractor validates the bearer token and stores the caller's
// identity in the request context.
func TokenExtractor(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "Token missing")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "Token missing")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Token invalid")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("staff", claims.Staff)
		c.Set("admin", claims.Admin)

		c.Next()
	}
}
