package sweeper

import (
	"context"
	"time"

	"chat-session-manager/internal/chat"
)

// Start launches the sweep loop in its own goroutine. The loop exits when
// Stop is called or ctx is cancelled, whichever comes first.
func (s *Sweeper) Start(ctx context.Context) {
	s.l.Infof(ctx, "sweeper: started, max idle age %s, interval %s", s.cfg.MaxIdleAge, s.cfg.SweepInterval)

	go s.run(ctx)
}

// Stop signals the loop to exit and waits for the in-flight pass to finish.
// Safe to call more than once.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// Sweep runs one eviction pass. Exported so an operator endpoint or a test
// can trigger a pass without waiting for the ticker.
func (s *Sweeper) Sweep(ctx context.Context) (chat.CleanupOutput, error) {
	out, err := s.uc.Cleanup(ctx, chat.CleanupInput{MaxAge: s.cfg.MaxIdleAge})
	if err != nil {
		s.l.Errorf(ctx, "sweeper: pass failed: %v", err)
		return chat.CleanupOutput{}, err
	}
	return out, nil
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := newTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep(ctx)
		case <-s.stop:
			s.l.Infof(ctx, "sweeper: stopped")
			return
		case <-ctx.Done():
			s.l.Infof(ctx, "sweeper: context cancelled")
			return
		}
	}
}

// newTicker guards against a zero interval from a misconfigured deployment.
func newTicker(d time.Duration) *time.Ticker {
	if d <= 0 {
		d = time.Hour
	}
	return time.NewTicker(d)
}
