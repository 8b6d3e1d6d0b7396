package errors

import "fmt"

// HTTPError is an error carrying the HTTP status it should be rendered with.
// Hint is an optional human-readable pointer at the likely fix (e.g. "check
// that the connector credential has not expired").
type HTTPError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// NewHTTPError creates an HTTPError with a status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// WithHint attaches a hint and returns the error for chaining.
func (e *HTTPError) WithHint(hint string) *HTTPError {
	e.Hint = hint
	return e
}

func (e *HTTPError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Hint)
	}
	return e.Message
}
