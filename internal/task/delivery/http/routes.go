package http

import (
	"github.com/gin-gonic/gin"

	"crm-task-bridge/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes sit behind the Auth middleware (a no-op when no bridge API key
// is configured).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/:id", mw.Auth(), h.Detail)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
