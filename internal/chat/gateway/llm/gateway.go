package llm

import (
	"context"
	"fmt"

	"chat-session-manager/internal/chat"
	"chat-session-manager/internal/chat/gateway"
	"chat-session-manager/pkg/llmprovider"
)

// conversationState is the provider context carried between turns: the
// normalized message transcript so far. Treated as immutable: Send builds
// an extended copy instead of appending in place, so a failed generation
// leaves the caller's state untouched.
type conversationState struct {
	messages []llmprovider.Message
}

// NewState returns an empty conversation state.
func (g *implGateway) NewState() chat.ProviderState {
	return &conversationState{}
}

// Send generates a response to input given the prior conversation state.
func (g *implGateway) Send(ctx context.Context, state chat.ProviderState, input string) (gateway.Reply, error) {
	prior := stateMessages(state)

	messages := make([]llmprovider.Message, 0, len(prior)+1)
	messages = append(messages, prior...)
	messages = append(messages, llmprovider.Message{Role: "user", Content: input})

	resp, err := g.mgr.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: g.cfg.SystemPrompt,
		Messages:          messages,
		Temperature:       g.cfg.Temperature,
		MaxTokens:         g.cfg.MaxTokens,
	})
	if err != nil {
		return gateway.Reply{}, fmt.Errorf("gateway: %w", err)
	}

	next := &conversationState{
		messages: append(messages, llmprovider.Message{Role: "assistant", Content: resp.Text}),
	}

	return gateway.Reply{Text: resp.Text, State: next}, nil
}

// stateMessages unwraps the opaque state. An unknown or nil state (fresh
// session from an older process, say) degrades to an empty transcript
// instead of failing the turn.
func stateMessages(state chat.ProviderState) []llmprovider.Message {
	if cs, ok := state.(*conversationState); ok && cs != nil {
		return cs.messages
	}
	return nil
}
