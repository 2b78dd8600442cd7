package usecase

import (
	"time"

	"chat-session-manager/internal/chat"
	"chat-session-manager/internal/chat/gateway"
	"chat-session-manager/internal/chat/registry"
	"chat-session-manager/pkg/log"
)

type implUseCase struct {
	l             log.Logger
	registry      registry.Registry
	gateway       gateway.Gateway
	defaultMaxAge time.Duration
}

// Ensure implUseCase implements the UseCase interface
var _ chat.UseCase = (*implUseCase)(nil)

// New creates the chat use case. defaultMaxAge is the idle age used by
// Cleanup when the caller does not supply one.
func New(l log.Logger, reg registry.Registry, gw gateway.Gateway, defaultMaxAge time.Duration) chat.UseCase {
	return &implUseCase{
		l:             l,
		registry:      reg,
		gateway:       gw,
		defaultMaxAge: defaultMaxAge,
	}
}
