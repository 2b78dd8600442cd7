package usecase

import (
	"context"

	"chat-session-manager/internal/chat"
)

func (uc implUseCase) List(ctx context.Context) (chat.ListSessionsOutput, error) {
	summaries, err := uc.registry.ListSessions(ctx)
	if err != nil {
		return chat.ListSessionsOutput{}, err
	}

	return chat.ListSessionsOutput{
		Sessions: summaries,
		Count:    len(summaries),
	}, nil
}
