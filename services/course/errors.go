package course

import "errors"

// ErrNotFound is returned when no course matches the requested id.
var ErrNotFound = errors.New("Curso não encontrado")

// ValidationError reports a missing or invalid required field. The message
// is surfaced verbatim in the API error envelope.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
