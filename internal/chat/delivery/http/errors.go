package http

import (
	"errors"

	"chat-session-manager/internal/chat"
	pkgErrors "chat-session-manager/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors collapse to a generic 500 so internals never leak.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(404, "session not found")
	case errors.Is(err, chat.ErrSessionExists):
		return pkgErrors.NewHTTPError(409, "session already exists")
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(400, "message must not be empty")
	case errors.Is(err, chat.ErrGatewayUnavailable):
		return pkgErrors.NewHTTPError(502, "conversation provider unavailable")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
