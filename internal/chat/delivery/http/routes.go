package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods under the chat
// group. The static /cleanup route coexists with the :id param routes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.Create)
		sessions.GET("", h.List)
		sessions.POST("/cleanup", h.Cleanup)
		sessions.GET("/:id", h.History)
		sessions.DELETE("/:id", h.Delete)
		sessions.POST("/:id/messages", h.Send)
		sessions.POST("/:id/clear", h.Clear)
	}
}
