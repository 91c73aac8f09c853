// Package common defines shared constants and sentinel errors used across
// the schoolguard client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")

	// Resource errors.
	ErrNotFound = errors.New("not found")
)
