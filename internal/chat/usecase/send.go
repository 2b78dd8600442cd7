package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chat-session-manager/internal/chat"
	"chat-session-manager/internal/chat/registry"
)

// Send runs one conversation turn. The gateway call happens between two
// registry operations, so no registry lock is held while waiting on the
// provider. Nothing is written until the provider has answered: a failed
// call leaves the session exactly as it was.
func (uc implUseCase) Send(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.SendMessageOutput{}, chat.ErrEmptyMessage
	}

	sess, err := uc.registry.GetSession(ctx, input.SessionID)
	if err != nil {
		return chat.SendMessageOutput{}, err
	}

	reply, err := uc.gateway.Send(ctx, sess.ProviderState, input.Message)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Send: session %s: %v", input.SessionID, err)
		return chat.SendMessageOutput{}, fmt.Errorf("%w: %v", chat.ErrGatewayUnavailable, err)
	}

	exchange, length, err := uc.registry.AppendExchange(ctx, registry.AppendExchangeOptions{
		ID:              input.SessionID,
		UserInput:       input.Message,
		AssistantOutput: reply.Text,
		ProviderState:   reply.State,
	})
	if err != nil {
		// Session deleted while the provider was generating. The reply is
		// dropped; there is no session left to record it against.
		if errors.Is(err, chat.ErrSessionNotFound) {
			uc.l.Warnf(ctx, "chat.usecase.Send: session %s removed mid-turn", input.SessionID)
		}
		return chat.SendMessageOutput{}, err
	}

	uc.l.Debugf(ctx, "chat.usecase.Send: session %s now has %d exchange(s)", input.SessionID, length)
	return chat.SendMessageOutput{
		SessionID:  input.SessionID,
		ExchangeID: exchange.ID,
		Response:   reply.Text,
	}, nil
}
