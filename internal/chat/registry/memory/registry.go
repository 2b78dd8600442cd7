package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chat-session-manager/internal/chat"
	"chat-session-manager/internal/chat/registry"
)

// CreateSession registers a new session. Duplicate ids are rejected rather
// than overwritten so an existing conversation can never be silently dropped.
func (r *implRegistry) CreateSession(ctx context.Context, opt registry.CreateSessionOptions) (chat.Session, error) {
	id := opt.ID
	if id == "" {
		id = uuid.NewString()
	}

	now := r.now()
	e := &entry{
		id:             id,
		createdAt:      now,
		lastActivityAt: now,
		providerState:  opt.ProviderState,
	}

	r.mu.Lock()
	if _, ok := r.sessions[id]; ok {
		r.mu.Unlock()
		return chat.Session{}, chat.ErrSessionExists
	}
	r.sessions[id] = e
	r.mu.Unlock()

	return e.snapshot(), nil
}

// GetSession returns a snapshot copy of the session.
func (r *implRegistry) GetSession(ctx context.Context, id string) (chat.Session, error) {
	e, err := r.lookup(id)
	if err != nil {
		return chat.Session{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return chat.Session{}, chat.ErrSessionNotFound
	}
	return e.snapshot(), nil
}

// AppendExchange atomically records one completed turn.
func (r *implRegistry) AppendExchange(ctx context.Context, opt registry.AppendExchangeOptions) (chat.Exchange, int, error) {
	e, err := r.lookup(opt.ID)
	if err != nil {
		return chat.Exchange{}, 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return chat.Exchange{}, 0, chat.ErrSessionNotFound
	}

	now := r.now()
	exchange := chat.Exchange{
		ID:              uuid.NewString(),
		UserInput:       opt.UserInput,
		AssistantOutput: opt.AssistantOutput,
		CreatedAt:       now,
	}
	e.history = append(e.history, exchange)
	e.touch(now)
	if opt.ProviderState != nil {
		e.providerState = opt.ProviderState
	}

	return exchange, len(e.history), nil
}

// ClearSession empties the history and installs a fresh provider state.
func (r *implRegistry) ClearSession(ctx context.Context, opt registry.ClearSessionOptions) (chat.Session, error) {
	e, err := r.lookup(opt.ID)
	if err != nil {
		return chat.Session{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return chat.Session{}, chat.ErrSessionNotFound
	}

	e.history = nil
	e.providerState = opt.ProviderState
	e.touch(r.now())

	return e.snapshot(), nil
}

// DeleteSession removes the session entirely.
func (r *implRegistry) DeleteSession(ctx context.Context, id string) (time.Time, error) {
	e, err := r.lookup(id)
	if err != nil {
		return time.Time{}, err
	}

	e.mu.Lock()
	if e.deleted {
		e.mu.Unlock()
		return time.Time{}, chat.ErrSessionNotFound
	}
	e.deleted = true
	e.mu.Unlock()

	r.remove(id, e)
	return r.now(), nil
}

// ListSessions returns a point-in-time snapshot of summaries.
func (r *implRegistry) ListSessions(ctx context.Context) ([]chat.Summary, error) {
	entries := r.snapshotEntries()

	summaries := make([]chat.Summary, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		if !e.deleted {
			summaries = append(summaries, chat.Summary{
				ID:             e.id,
				CreatedAt:      e.createdAt,
				LastActivityAt: e.lastActivityAt,
				MessageCount:   len(e.history),
			})
		}
		e.mu.Unlock()
	}

	return summaries, nil
}

// EvictStale removes every session idle strictly longer than maxAge. The
// idle check happens under the entry lock, so an append racing the sweep
// either lands first (and rescues the session) or observes the tombstone.
func (r *implRegistry) EvictStale(ctx context.Context, maxAge time.Duration) (registry.EvictResult, error) {
	now := r.now()
	entries := r.snapshotEntries()

	var evicted []*entry
	for _, e := range entries {
		e.mu.Lock()
		if !e.deleted && now.Sub(e.lastActivityAt) > maxAge {
			e.deleted = true
			evicted = append(evicted, e)
		}
		e.mu.Unlock()
	}

	r.mu.Lock()
	for _, e := range evicted {
		if r.sessions[e.id] == e {
			delete(r.sessions, e.id)
		}
	}
	remaining := len(r.sessions)
	r.mu.Unlock()

	if len(evicted) > 0 {
		r.l.Debugf(ctx, "registry: evicted %d stale session(s), %d remaining", len(evicted), remaining)
	}

	return registry.EvictResult{Evicted: len(evicted), Remaining: remaining}, nil
}

// lookup resolves an id to its live entry without touching entry state.
func (r *implRegistry) lookup(id string) (*entry, error) {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, chat.ErrSessionNotFound
	}
	return e, nil
}

// remove drops the entry from the map. The pointer comparison guards against
// removing a different session that reused the id after a delete.
func (r *implRegistry) remove(id string, e *entry) {
	r.mu.Lock()
	if r.sessions[id] == e {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
}

func (r *implRegistry) snapshotEntries() []*entry {
	r.mu.RLock()
	entries := make([]*entry, 0, len(r.sessions))
	for _, e := range r.sessions {
		entries = append(entries, e)
	}
	r.mu.RUnlock()
	return entries
}

// snapshot copies the session for return to callers. History is copied so no
// caller holds a live reference into registry-owned state. Callers must hold
// e.mu, except during CreateSession where the entry is not yet published.
func (e *entry) snapshot() chat.Session {
	var history []chat.Exchange
	if len(e.history) > 0 {
		history = make([]chat.Exchange, len(e.history))
		copy(history, e.history)
	}
	return chat.Session{
		ID:             e.id,
		History:        history,
		CreatedAt:      e.createdAt,
		LastActivityAt: e.lastActivityAt,
		ProviderState:  e.providerState,
	}
}

// touch bumps the activity timestamp, keeping it monotonically non-decreasing.
func (e *entry) touch(now time.Time) {
	if now.After(e.lastActivityAt) {
		e.lastActivityAt = now
	}
}
