// Package apperr holds the error kinds shared by services and adapters.
// Callers match them with errors.Is.
package apperr

import "errors"

var (
	// ErrNotFound covers a missing user, a missing post and a post that
	// belongs to someone else. The three are reported identically.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a payload fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned by login for any mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
