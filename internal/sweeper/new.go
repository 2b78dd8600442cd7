package sweeper

import (
	"sync"
	"time"

	"chat-session-manager/internal/chat"
	"chat-session-manager/pkg/log"
)

// Config controls the periodic eviction sweep.
type Config struct {
	MaxIdleAge    time.Duration // sessions idle longer than this are evicted
	SweepInterval time.Duration // time between passes
}

// Sweeper periodically evicts stale sessions through the chat use case.
type Sweeper struct {
	l   log.Logger
	uc  chat.UseCase
	cfg Config

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New creates a sweeper. Start must be called to begin sweeping.
func New(l log.Logger, uc chat.UseCase, cfg Config) *Sweeper {
	return &Sweeper{
		l:    l,
		uc:   uc,
		cfg:  cfg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}
