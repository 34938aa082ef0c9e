// Package common defines shared sentinel errors and small helpers used
// across the portal core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// User-facing error kinds. Every one of them is recoverable: the
	// caller reports it through the notification sink and carries on.
	ErrValidation         = errors.New("invalid email or password too short")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")
)
