package middleware

import (
	"net/http"
	"os"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware sets the CORS headers. Outside production every origin is
// accepted; in production only the origins listed in ALLOWED_ORIGINS are
// echoed back.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()

		if os.Getenv("ENVIRONMENT") == "production" {
			allowed := strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",")
			if origin := c.Request.Header.Get("Origin"); slices.Contains(allowed, origin) {
				header.Set("Access-Control-Allow-Origin", origin)
			}
		} else {
			header.Set("Access-Control-Allow-Origin", "*")
		}

		header.Set("Access-Control-Allow-Credentials", "true")
		header.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Authorization")
		header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
