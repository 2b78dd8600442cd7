package llm

import (
	"context"
	"errors"
	"testing"

	"chat-session-manager/pkg/llmprovider"
)

type fakeManager struct {
	resp *llmprovider.Response
	err  error
	got  *llmprovider.Request
}

func (f *fakeManager) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{}) {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{}) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Warn(ctx context.Context, args ...interface{}) {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Error(ctx context.Context, args ...interface{}) {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}

func TestSend(t *testing.T) {
	ctx := context.Background()

	t.Run("Carries Conversation Forward", func(t *testing.T) {
		mgr := &fakeManager{resp: &llmprovider.Response{Text: "hello"}}
		g := New(mgr, Config{SystemPrompt: "be brief", Temperature: 0.5}, nopLogger{})

		state := g.NewState()
		reply, err := g.Send(ctx, state, "hi")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Text != "hello" {
			t.Errorf("expected hello, got %q", reply.Text)
		}
		if mgr.got.SystemInstruction != "be brief" {
			t.Errorf("system prompt not forwarded: %q", mgr.got.SystemInstruction)
		}
		if len(mgr.got.Messages) != 1 || mgr.got.Messages[0].Content != "hi" {
			t.Errorf("unexpected request messages: %+v", mgr.got.Messages)
		}

		// Second turn sees the full transcript.
		reply2, err := g.Send(ctx, reply.State, "more")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mgr.got.Messages) != 3 {
			t.Fatalf("expected 3 messages (user, assistant, user), got %d", len(mgr.got.Messages))
		}
		if mgr.got.Messages[1].Role != "assistant" || mgr.got.Messages[1].Content != "hello" {
			t.Errorf("prior assistant turn missing: %+v", mgr.got.Messages[1])
		}
		_ = reply2
	})

	t.Run("Failure Leaves State Usable", func(t *testing.T) {
		mgr := &fakeManager{resp: &llmprovider.Response{Text: "first"}}
		g := New(mgr, Config{}, nopLogger{})

		reply, err := g.Send(ctx, g.NewState(), "hi")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		mgr.err = errors.New("provider down")
		if _, err := g.Send(ctx, reply.State, "again"); err == nil {
			t.Fatal("expected error")
		}

		// The failed call must not have grown the old state.
		mgr.err = nil
		mgr.resp = &llmprovider.Response{Text: "second"}
		if _, err := g.Send(ctx, reply.State, "retry"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mgr.got.Messages) != 3 {
			t.Errorf("state grew on failure: %d messages", len(mgr.got.Messages))
		}
	})

	t.Run("Unknown State Degrades To Empty", func(t *testing.T) {
		mgr := &fakeManager{resp: &llmprovider.Response{Text: "ok"}}
		g := New(mgr, Config{}, nopLogger{})

		if _, err := g.Send(ctx, nil, "hi"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mgr.got.Messages) != 1 {
			t.Errorf("expected single message, got %d", len(mgr.got.Messages))
		}
	})
}
