package service

import (
	"errors"
	"fmt"

	"auracash/database"
)

var (
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUnauthenticated     = errors.New("authentication required")
	ErrDatabaseUnavailable = errors.New("database unavailable")
	ErrNotFound            = errors.New("not found")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// translate maps repository sentinels onto the service taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrUnavailable):
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	case errors.Is(err, database.ErrNotFound):
		return ErrNotFound
	}
	return err
}
