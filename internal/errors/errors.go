// Package errors provides standardized domain errors that express intent rather
// than infrastructure details. Use cases return these (or errors wrapping them)
// and the HTTP layer maps them to status codes.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors shared by every module.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., a stale key version).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates malformed input detected before any cryptographic
	// primitive runs (wrong-length salt or nonce, empty secret, bad record fields).
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthentication indicates an AEAD tag did not verify. It is never retried
	// and never turned into empty or default plaintext.
	ErrAuthentication = errors.New("authentication failed")

	// ErrDecode indicates malformed text encoding.
	ErrDecode = errors.New("decode failed")

	// ErrRandomnessUnavailable indicates the secure random source could not supply bytes.
	ErrRandomnessUnavailable = errors.New("randomness unavailable")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message while preserving the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Kind returns a short, non-sensitive label for the category of err. It is
// safe to log and to use as a metric attribute.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidInput):
		return "validation"
	case errors.Is(err, ErrAuthentication):
		return "authentication"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrRandomnessUnavailable):
		return "randomness_unavailable"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "internal"
	}
}
