// Package apperrors defines the error categories shared across services so
// callers can branch on error kind instead of matching message strings.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrListingNotFound indicates the requested listing does not exist
	ErrListingNotFound = errors.New("listing not found")

	// ErrTransactionNotFound indicates the requested transaction does not exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUserNotFound indicates the requested user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrValidation indicates the request was well formed but semantically
	// invalid. Not retriable without changing the request.
	ErrValidation = errors.New("validation failed")

	// ErrUpstreamUnavailable indicates a remote service could not be reached
	// or answered with an unexpected failure. Potentially retriable.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)

// ValidationError wraps ErrValidation with a caller-facing reason
func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// GreenScoreUpdateError is raised when a completion transition fails to apply
// one of the green score rewards. It signals that the transaction was NOT
// persisted in its new state, so retrying the same status update is the
// correct recovery action.
type GreenScoreUpdateError struct {
	Err error
}

func (e *GreenScoreUpdateError) Error() string {
	return fmt.Sprintf("failed to update green scores: %v", e.Err)
}

func (e *GreenScoreUpdateError) Unwrap() error {
	return e.Err
}

// IsGreenScoreUpdateError reports whether err wraps a GreenScoreUpdateError
func IsGreenScoreUpdateError(err error) bool {
	var gse *GreenScoreUpdateError
	return errors.As(err, &gse)
}
