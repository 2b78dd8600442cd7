package usecase

import (
	"context"

	"chat-session-manager/internal/chat"
)

func (uc implUseCase) Cleanup(ctx context.Context, input chat.CleanupInput) (chat.CleanupOutput, error) {
	maxAge := input.MaxAge
	if maxAge <= 0 {
		maxAge = uc.defaultMaxAge
	}

	result, err := uc.registry.EvictStale(ctx, maxAge)
	if err != nil {
		return chat.CleanupOutput{}, err
	}

	if result.Evicted > 0 {
		uc.l.Infof(ctx, "chat.usecase.Cleanup: evicted %d session(s) idle > %s, %d remaining",
			result.Evicted, maxAge, result.Remaining)
	}

	return chat.CleanupOutput{
		Cleaned:   result.Evicted,
		Remaining: result.Remaining,
	}, nil
}
