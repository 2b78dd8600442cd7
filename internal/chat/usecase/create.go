package usecase

import (
	"context"

	"chat-session-manager/internal/chat"
	"chat-session-manager/internal/chat/registry"
)

func (uc implUseCase) Create(ctx context.Context, input chat.CreateSessionInput) (chat.CreateSessionOutput, error) {
	sess, err := uc.registry.CreateSession(ctx, registry.CreateSessionOptions{
		ID:            input.SessionID,
		ProviderState: uc.gateway.NewState(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Create: %v", err)
		return chat.CreateSessionOutput{}, err
	}

	uc.l.Infof(ctx, "chat.usecase.Create: session %s created", sess.ID)
	return chat.CreateSessionOutput{
		SessionID: sess.ID,
		CreatedAt: sess.CreatedAt,
	}, nil
}
