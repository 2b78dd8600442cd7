package registry

import "chat-session-manager/internal/chat"

// CreateSessionOptions holds parameters for registering a new session.
type CreateSessionOptions struct {
	ID            string // optional; a UUID is generated when empty
	ProviderState chat.ProviderState
}

// AppendExchangeOptions holds parameters for appending one completed turn.
type AppendExchangeOptions struct {
	ID              string
	UserInput       string
	AssistantOutput string
	ProviderState   chat.ProviderState // replaces the stored state
}

// ClearSessionOptions holds parameters for resetting a session's history.
type ClearSessionOptions struct {
	ID            string
	ProviderState chat.ProviderState // fresh state replacing the old one
}

// EvictResult reports one eviction pass.
type EvictResult struct {
	Evicted   int
	Remaining int
}
