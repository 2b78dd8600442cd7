package llm

import (
	"chat-session-manager/internal/chat/gateway"
	"chat-session-manager/pkg/llmprovider"
	"chat-session-manager/pkg/log"
)

// Config holds generation parameters applied to every gateway call.
type Config struct {
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
}

// implGateway implements gateway.Gateway on top of the provider manager.
type implGateway struct {
	mgr llmprovider.IManager
	cfg Config
	l   log.Logger
}

// Ensure implGateway implements the Gateway interface
var _ gateway.Gateway = (*implGateway)(nil)

// New creates a new LLM-backed conversation gateway.
func New(mgr llmprovider.IManager, cfg Config, l log.Logger) *implGateway {
	return &implGateway{
		mgr: mgr,
		cfg: cfg,
		l:   l,
	}
}
