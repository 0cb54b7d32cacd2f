package domain

// ValidationError carries a user-facing message for rejected input. The message
// is surfaced verbatim in the HTTP response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
