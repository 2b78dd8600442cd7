package errors

import "fmt"

// HTTPError carries an HTTP status alongside a caller-facing message.
// Delivery layers construct these; pkg/response resolves the status from them.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// ErrInternalServerError is the generic fallback for unexpected faults.
// It deliberately carries no detail so internals never leak to clients.
var ErrInternalServerError = NewHTTPError(500, "internal server error")
