package registry

import (
	"context"
	"time"

	"chat-session-manager/internal/chat"
)

// Registry is the single authoritative, thread-safe mapping from session id
// to session. Every lifecycle transition passes through it. Operations are
// in-memory only: they never perform I/O and never block on the network.
type Registry interface {
	// CreateSession registers a new session. A duplicate id is rejected with
	// chat.ErrSessionExists; the existing session is never overwritten.
	CreateSession(ctx context.Context, opt CreateSessionOptions) (chat.Session, error)

	// GetSession returns a snapshot copy of the session, or
	// chat.ErrSessionNotFound. It never creates implicitly.
	GetSession(ctx context.Context, id string) (chat.Session, error)

	// AppendExchange atomically appends one exchange, bumps the activity
	// timestamp, and swaps in the new provider state. Returns the created
	// exchange and the new history length.
	AppendExchange(ctx context.Context, opt AppendExchangeOptions) (chat.Exchange, int, error)

	// ClearSession empties the history and installs a fresh provider state,
	// preserving id and creation time. Returns the updated snapshot.
	ClearSession(ctx context.Context, opt ClearSessionOptions) (chat.Session, error)

	// DeleteSession removes the session entirely and returns the deletion time.
	DeleteSession(ctx context.Context, id string) (time.Time, error)

	// ListSessions returns a point-in-time snapshot of session summaries.
	// Order is unspecified but stable within one call.
	ListSessions(ctx context.Context) ([]chat.Summary, error)

	// EvictStale removes every session idle strictly longer than maxAge.
	// The staleness check and the removal are consistent: a session that
	// becomes active mid-sweep is not evicted in that pass.
	EvictStale(ctx context.Context, maxAge time.Duration) (EvictResult, error)
}
