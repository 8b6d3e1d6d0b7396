package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows the configured front-end origin to call the bridge from the
// browser. The tutorial default is "*".
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := m.corsOrigin
		if origin == "" {
			origin = "*"
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
