package http

import (
	"github.com/gin-gonic/gin"

	"chat-session-manager/internal/chat"
	"chat-session-manager/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Send(c *gin.Context)
	History(c *gin.Context)
	Clear(c *gin.Context)
	Delete(c *gin.Context)
	List(c *gin.Context)
	Cleanup(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
