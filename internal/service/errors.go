package service

import (
	"errors"
	"strings"
)

var (
	ErrWrongPassword = errors.New("wrong password")
	ErrNotAdmin      = errors.New("account has no admin privileges")

	ErrInvalidStatus  = errors.New("invalid message status")
	ErrInvalidNumber  = errors.New("invalid numeric field")
	ErrInvalidDataURI = errors.New("invalid image data URI")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// ValidationError reports the required fields a request body left absent
// or empty. The field names are preserved in the order they were checked
// so the client message is stable.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// NewValidationError wraps the given field names, returning nil when the
// list is empty so callers can return it directly.
func NewValidationError(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
