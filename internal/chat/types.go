package chat

import "time"

// ProviderState is the opaque per-session context the conversation gateway
// needs to continue a conversation. The registry stores it between turns but
// never inspects it; only the gateway creates and replaces values.
type ProviderState any

// Exchange is one user/assistant turn. Immutable once appended to a session.
type Exchange struct {
	ID              string
	UserInput       string
	AssistantOutput string
	CreatedAt       time.Time
}

// Session is a single ongoing conversation.
type Session struct {
	ID             string
	History        []Exchange // insertion order = conversation order
	CreatedAt      time.Time
	LastActivityAt time.Time
	ProviderState  ProviderState
}

// Summary is the listing view of a session.
type Summary struct {
	ID             string
	CreatedAt      time.Time
	LastActivityAt time.Time
	MessageCount   int
}

// --- UseCase Inputs ---

type CreateSessionInput struct {
	SessionID string // optional; generated when empty
}

type SendMessageInput struct {
	SessionID string
	Message   string
}

type CleanupInput struct {
	MaxAge time.Duration // zero means the configured default
}

// --- UseCase Outputs ---

type CreateSessionOutput struct {
	SessionID string
	CreatedAt time.Time
}

type SendMessageOutput struct {
	SessionID  string
	ExchangeID string
	Response   string
}

type HistoryOutput struct {
	Session Session
}

type ClearSessionOutput struct {
	SessionID string
	ClearedAt time.Time
}

type DeleteSessionOutput struct {
	SessionID string
	DeletedAt time.Time
}

type ListSessionsOutput struct {
	Sessions []Summary
	Count    int
}

type CleanupOutput struct {
	Cleaned   int
	Remaining int
}
