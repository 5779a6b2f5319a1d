// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Configuration errors - fatal at startup.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Embedding backend errors. Classification fails fast when the model is
	// unreachable; pattern mining has no embedding dependency and survives.
	ErrModelUnavailable = errors.New("embedding model unavailable")

	// Input errors - surfaced to the caller, abort the current input only.
	ErrMissingColumn = errors.New("title column not found")
	ErrEmptyInput    = errors.New("no titles to analyze")

	// Classification errors.
	ErrNoResults = errors.New("no classification results")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
