package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"chat-session-manager/internal/chat"
	"chat-session-manager/internal/chat/gateway"
	"chat-session-manager/internal/chat/registry/memory"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, args ...interface{}) {}
func (testLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (testLogger) Info(ctx context.Context, args ...interface{}) {}
func (testLogger) Infof(ctx context.Context, format string, args ...interface{}) {}
func (testLogger) Warn(ctx context.Context, args ...interface{}) {}
func (testLogger) Warnf(ctx context.Context, format string, args ...interface{}) {}
func (testLogger) Error(ctx context.Context, args ...interface{}) {}
func (testLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}

// fakeGateway replies with a canned answer and counts its state generations,
// so tests can observe state replacement across turns and clears.
type fakeGateway struct {
	fail    bool
	calls   int
	states  int
	lastIn  string
	lastSt  chat.ProviderState
	replies []string
}

type fakeState struct{ gen int }

func (g *fakeGateway) NewState() chat.ProviderState {
	g.states++
	return &fakeState{gen: g.states}
}

func (g *fakeGateway) Send(ctx context.Context, state chat.ProviderState, input string) (gateway.Reply, error) {
	g.calls++
	g.lastIn = input
	g.lastSt = state
	if g.fail {
		return gateway.Reply{}, errors.New("provider exploded")
	}
	text := fmt.Sprintf("reply to %q", input)
	if len(g.replies) > 0 {
		text = g.replies[0]
		g.replies = g.replies[1:]
	}
	g.states++
	return gateway.Reply{Text: text, State: &fakeState{gen: g.states}}, nil
}

func newTestUseCase(gw gateway.Gateway) chat.UseCase {
	return New(testLogger{}, memory.New(testLogger{}), gw, 24*time.Hour)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Generates ID And Installs Fresh State", func(t *testing.T) {
		gw := &fakeGateway{}
		uc := newTestUseCase(gw)

		out, err := uc.Create(ctx, chat.CreateSessionInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SessionID == "" {
			t.Error("expected a generated session id")
		}
		if gw.states != 1 {
			t.Errorf("expected 1 state generation, got %d", gw.states)
		}

		hist, err := uc.History(ctx, out.SessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hist.Session.ProviderState == nil {
			t.Error("expected provider state on fresh session")
		}
	})

	t.Run("Duplicate ID Rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeGateway{})

		if _, err := uc.Create(ctx, chat.CreateSessionInput{SessionID: "dup"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Create(ctx, chat.CreateSessionInput{SessionID: "dup"}); !errors.Is(err, chat.ErrSessionExists) {
			t.Errorf("expected ErrSessionExists, got %v", err)
		}
	})
}

func TestSend(t *testing.T) {
	ctx := context.Background()

	t.Run("Appends On Success", func(t *testing.T) {
		gw := &fakeGateway{replies: []string{"hi there"}}
		uc := newTestUseCase(gw)

		created, _ := uc.Create(ctx, chat.CreateSessionInput{})
		out, err := uc.Send(ctx, chat.SendMessageInput{SessionID: created.SessionID, Message: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != "hi there" {
			t.Errorf("expected canned reply, got %q", out.Response)
		}
		if out.ExchangeID == "" {
			t.Error("expected an exchange id")
		}

		hist, _ := uc.History(ctx, created.SessionID)
		if len(hist.Session.History) != 1 {
			t.Fatalf("expected 1 exchange, got %d", len(hist.Session.History))
		}
		ex := hist.Session.History[0]
		if ex.UserInput != "hello" || ex.AssistantOutput != "hi there" {
			t.Errorf("exchange not recorded faithfully: %+v", ex)
		}
		if st, ok := hist.Session.ProviderState.(*fakeState); !ok || st.gen != 2 {
			t.Errorf("provider state not replaced by gateway reply: %+v", hist.Session.ProviderState)
		}
	})

	t.Run("Gateway Failure Writes Nothing", func(t *testing.T) {
		gw := &fakeGateway{fail: true}
		uc := newTestUseCase(gw)

		created, _ := uc.Create(ctx, chat.CreateSessionInput{})
		before, _ := uc.History(ctx, created.SessionID)

		_, err := uc.Send(ctx, chat.SendMessageInput{SessionID: created.SessionID, Message: "hello"})
		if !errors.Is(err, chat.ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}

		after, _ := uc.History(ctx, created.SessionID)
		if len(after.Session.History) != 0 {
			t.Errorf("history grew on gateway failure: %d exchange(s)", len(after.Session.History))
		}
		if !after.Session.LastActivityAt.Equal(before.Session.LastActivityAt) {
			t.Error("activity timestamp changed on gateway failure")
		}
	})

	t.Run("Empty Message Rejected Before Gateway", func(t *testing.T) {
		gw := &fakeGateway{}
		uc := newTestUseCase(gw)

		created, _ := uc.Create(ctx, chat.CreateSessionInput{})
		for _, msg := range []string{"", "   ", "\n\t"} {
			if _, err := uc.Send(ctx, chat.SendMessageInput{SessionID: created.SessionID, Message: msg}); !errors.Is(err, chat.ErrEmptyMessage) {
				t.Errorf("message %q: expected ErrEmptyMessage, got %v", msg, err)
			}
		}
		if gw.calls != 0 {
			t.Errorf("gateway called %d time(s) for empty input", gw.calls)
		}
	})

	t.Run("Unknown Session Never Created Implicitly", func(t *testing.T) {
		gw := &fakeGateway{}
		uc := newTestUseCase(gw)

		_, err := uc.Send(ctx, chat.SendMessageInput{SessionID: "ghost", Message: "hello"})
		if !errors.Is(err, chat.ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if gw.calls != 0 {
			t.Error("gateway called for unknown session")
		}

		list, _ := uc.List(ctx)
		if list.Count != 0 {
			t.Errorf("session appeared implicitly: %d listed", list.Count)
		}
	})

	t.Run("Session Deleted Mid Turn Drops Reply", func(t *testing.T) {
		reg := memory.New(testLogger{})
		gw := &deletingGateway{}
		uc := New(testLogger{}, reg, gw, 24*time.Hour)
		gw.deleteFn = func() { uc.Delete(ctx, "victim") }

		if _, err := uc.Create(ctx, chat.CreateSessionInput{SessionID: "victim"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Send(ctx, chat.SendMessageInput{SessionID: "victim", Message: "hello"}); !errors.Is(err, chat.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

// deletingGateway removes the session while "generating", simulating a
// concurrent delete landing during a provider round trip.
type deletingGateway struct {
	deleteFn func()
}

func (g *deletingGateway) NewState() chat.ProviderState { return &fakeState{} }

func (g *deletingGateway) Send(ctx context.Context, state chat.ProviderState, input string) (gateway.Reply, error) {
	if g.deleteFn != nil {
		g.deleteFn()
	}
	return gateway.Reply{Text: "too late", State: &fakeState{}}, nil
}

func TestClear(t *testing.T) {
	ctx := context.Background()

	t.Run("Empties History And Resets State", func(t *testing.T) {
		gw := &fakeGateway{}
		uc := newTestUseCase(gw)

		created, _ := uc.Create(ctx, chat.CreateSessionInput{})
		uc.Send(ctx, chat.SendMessageInput{SessionID: created.SessionID, Message: "one"})
		uc.Send(ctx, chat.SendMessageInput{SessionID: created.SessionID, Message: "two"})

		out, err := uc.Clear(ctx, created.SessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SessionID != created.SessionID {
			t.Errorf("expected id %s, got %s", created.SessionID, out.SessionID)
		}

		hist, _ := uc.History(ctx, created.SessionID)
		if len(hist.Session.History) != 0 {
			t.Errorf("expected empty history, got %d", len(hist.Session.History))
		}
		if !hist.Session.CreatedAt.Equal(created.CreatedAt) {
			t.Error("creation time changed on clear")
		}

		// The next turn must start from the fresh state, not the old one.
		uc.Send(ctx, chat.SendMessageInput{SessionID: created.SessionID, Message: "three"})
		if st, ok := gw.lastSt.(*fakeState); !ok || st.gen <= 3 {
			t.Errorf("send after clear did not use the fresh state: %+v", gw.lastSt)
		}
	})

	t.Run("Unknown Session", func(t *testing.T) {
		uc := newTestUseCase(&fakeGateway{})
		if _, err := uc.Clear(ctx, "ghost"); !errors.Is(err, chat.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(&fakeGateway{})

	created, _ := uc.Create(ctx, chat.CreateSessionInput{})
	if _, err := uc.Delete(ctx, created.SessionID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.History(ctx, created.SessionID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if _, err := uc.Delete(ctx, created.SessionID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound on double delete, got %v", err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(&fakeGateway{})

	for i := 0; i < 3; i++ {
		if _, err := uc.Create(ctx, chat.CreateSessionInput{SessionID: fmt.Sprintf("s-%d", i)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	uc.Send(ctx, chat.SendMessageInput{SessionID: "s-1", Message: "hello"})

	out, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 3 || len(out.Sessions) != 3 {
		t.Fatalf("expected 3 sessions, got count=%d len=%d", out.Count, len(out.Sessions))
	}
	for _, s := range out.Sessions {
		if s.ID == "s-1" && s.MessageCount != 1 {
			t.Errorf("expected s-1 to count 1 message, got %d", s.MessageCount)
		}
	}
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()

	t.Run("Zero MaxAge Uses Default", func(t *testing.T) {
		uc := newTestUseCase(&fakeGateway{})
		uc.Create(ctx, chat.CreateSessionInput{SessionID: "fresh"})

		out, err := uc.Cleanup(ctx, chat.CleanupInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Cleaned != 0 || out.Remaining != 1 {
			t.Errorf("fresh session evicted under default max age: %+v", out)
		}
	})

	t.Run("Explicit MaxAge", func(t *testing.T) {
		uc := newTestUseCase(&fakeGateway{})
		uc.Create(ctx, chat.CreateSessionInput{SessionID: "a"})
		time.Sleep(10 * time.Millisecond)

		out, err := uc.Cleanup(ctx, chat.CleanupInput{MaxAge: time.Millisecond})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Cleaned != 1 || out.Remaining != 0 {
			t.Errorf("expected the idle session evicted: %+v", out)
		}
	})
}

func TestFullLifecycle(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{}
	uc := newTestUseCase(gw)

	created, err := uc.Create(ctx, chat.CreateSessionInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := uc.Send(ctx, chat.SendMessageInput{SessionID: created.SessionID, Message: fmt.Sprintf("turn %d", i)}); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}

	hist, _ := uc.History(ctx, created.SessionID)
	if len(hist.Session.History) != 3 {
		t.Fatalf("expected 3 exchanges, got %d", len(hist.Session.History))
	}
	for i, ex := range hist.Session.History {
		if ex.UserInput != fmt.Sprintf("turn %d", i) {
			t.Errorf("history out of order at %d: %q", i, ex.UserInput)
		}
	}

	if _, err := uc.Clear(ctx, created.SessionID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := uc.Delete(ctx, created.SessionID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, _ := uc.List(ctx)
	if list.Count != 0 {
		t.Errorf("expected empty registry, got %d", list.Count)
	}
}
