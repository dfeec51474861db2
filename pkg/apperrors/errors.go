package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain layer. Services wrap these with context via
// fmt.Errorf("...: %w", Err...) and handlers map them to HTTP statuses.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource already exists")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrProvider           = errors.New("external provider error")
	ErrConfig             = errors.New("configuration error")
)

func NotFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}

func Conflict(what string) error {
	return fmt.Errorf("%s: %w", what, ErrConflict)
}

func Validation(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrValidation)
}

// Provider wraps a per-account mail provider failure. These are downgraded to
// warnings during inbox aggregation, never fatal for the whole request.
func Provider(provider, account string, err error) error {
	return fmt.Errorf("%s fetch failed for %s: %v: %w", provider, account, err, ErrProvider)
}

// Config signals a missing or unreadable credential file. The message carries
// the expected path so the user can fix it.
func Config(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrConfig)
}
