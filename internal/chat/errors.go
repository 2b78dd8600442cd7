package chat

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExists      = errors.New("session already exists")
	ErrEmptyMessage       = errors.New("message must not be empty")
	ErrGatewayUnavailable = errors.New("conversation gateway unavailable")
)
