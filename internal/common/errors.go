// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Model errors.
	ErrModelUnavailable     = errors.New("model unavailable")
	ErrClassificationFailed = errors.New("classification failed")

	// Input errors.
	ErrEmptyInput = errors.New("empty input")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
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

// UserMessage returns the text a person should see for err.
func UserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return "Please paste a news article before analyzing."
	case errors.Is(err, ErrModelUnavailable):
		return "The classification model is unavailable right now. Please try again shortly."
	case errors.Is(err, context.DeadlineExceeded):
		return "The classification model took too long to respond."
	case errors.Is(err, context.Canceled):
		return "The analysis was canceled."
	case errors.Is(err, ErrClassificationFailed):
		return "The model returned a result that could not be interpreted."
	default:
		return "Something went wrong while analyzing the article."
	}
}

// IsRetryable determines if an error should trigger a retry.
// An explicit RetryableError marker takes precedence over the wrapped cause.
func IsRetryable(err error) bool {
	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return errors.Is(err, ErrRateLimit) ||
		errors.Is(err, context.DeadlineExceeded)
}
