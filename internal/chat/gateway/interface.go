package gateway

import (
	"context"

	"chat-session-manager/internal/chat"
)

// Reply is a successful gateway response: the generated text plus the new
// provider state extended with both turns. The state passed to Send is never
// mutated; a failed call leaves it usable for a retry.
type Reply struct {
	Text  string
	State chat.ProviderState
}

// Gateway abstracts the conversational AI provider.
type Gateway interface {
	// NewState returns a fresh provider state for a new or cleared session.
	NewState() chat.ProviderState

	// Send generates a response to input given the conversation state.
	Send(ctx context.Context, state chat.ProviderState, input string) (Reply, error)
}
