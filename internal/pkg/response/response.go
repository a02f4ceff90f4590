package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes the stable {"error": "..."} failure shape.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
