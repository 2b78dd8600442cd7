package memory

import (
	"sync"
	"time"

	"chat-session-manager/internal/chat"
	"chat-session-manager/internal/chat/registry"
	"chat-session-manager/pkg/log"
)

// implRegistry is the in-memory registry.Registry backend.
//
// Locking protocol: mu guards only the map and is held for map operations
// only, never across a session mutation. Each entry carries its own mutex so
// operations on one session serialize without blocking other sessions.
type implRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	l        log.Logger
	now      func() time.Time
}

// entry is the live record behind one session id. The deleted tombstone
// keeps removal and in-flight appends from interleaving: once set under the
// entry lock, every later operation on the entry fails with
// chat.ErrSessionNotFound even if a caller still holds the pointer.
type entry struct {
	mu             sync.Mutex
	id             string
	history        []chat.Exchange
	createdAt      time.Time
	lastActivityAt time.Time
	providerState  chat.ProviderState
	deleted        bool
}

// Ensure implRegistry implements the Registry interface
var _ registry.Registry = (*implRegistry)(nil)

// New creates a new in-memory session registry.
func New(l log.Logger) *implRegistry {
	return &implRegistry{
		sessions: make(map[string]*entry),
		l:        l,
		now:      time.Now,
	}
}
