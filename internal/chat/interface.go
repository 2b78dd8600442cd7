package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Session lifecycle
	Create(ctx context.Context, input CreateSessionInput) (CreateSessionOutput, error)
	Send(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
	Clear(ctx context.Context, sessionID string) (ClearSessionOutput, error)
	Delete(ctx context.Context, sessionID string) (DeleteSessionOutput, error)
	List(ctx context.Context) (ListSessionsOutput, error)

	// Cleanup evicts sessions idle longer than input.MaxAge.
	Cleanup(ctx context.Context, input CleanupInput) (CleanupOutput, error)
}
