package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "chat-session-manager/internal/chat/delivery/http"
	"chat-session-manager/internal/middleware"
)

// setupChatDomain registers the chat domain routes. The use case arrives
// prebuilt through Config so the registry and sweeper share one instance.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, _ middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.chatUC)

	// Registers /api/v1/chat/sessions
	chatHTTP.RegisterRoutes(api.Group("/chat"), h)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
