package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"crm-task-bridge/pkg/response"
)

const headerAPIKey = "X-API-Key"

// Auth gates a route behind the static bridge API key. When no key is
// configured the middleware is a pass-through, which is the tutorial default.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.authKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(headerAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.authKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "auth: rejected request to %s", c.FullPath())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
