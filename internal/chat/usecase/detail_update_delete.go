package usecase

import (
	"context"

	"chat-session-manager/internal/chat"
	"chat-session-manager/internal/chat/registry"
)

func (uc implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	sess, err := uc.registry.GetSession(ctx, sessionID)
	if err != nil {
		return chat.HistoryOutput{}, err
	}

	return chat.HistoryOutput{Session: sess}, nil
}

func (uc implUseCase) Clear(ctx context.Context, sessionID string) (chat.ClearSessionOutput, error) {
	sess, err := uc.registry.ClearSession(ctx, registry.ClearSessionOptions{
		ID:            sessionID,
		ProviderState: uc.gateway.NewState(),
	})
	if err != nil {
		return chat.ClearSessionOutput{}, err
	}

	uc.l.Infof(ctx, "chat.usecase.Clear: session %s cleared", sessionID)
	return chat.ClearSessionOutput{
		SessionID: sess.ID,
		ClearedAt: sess.LastActivityAt,
	}, nil
}

func (uc implUseCase) Delete(ctx context.Context, sessionID string) (chat.DeleteSessionOutput, error) {
	deletedAt, err := uc.registry.DeleteSession(ctx, sessionID)
	if err != nil {
		return chat.DeleteSessionOutput{}, err
	}

	uc.l.Infof(ctx, "chat.usecase.Delete: session %s deleted", sessionID)
	return chat.DeleteSessionOutput{
		SessionID: sessionID,
		DeletedAt: deletedAt,
	}, nil
}
