// Package common defines shared constants, sentinel errors and small helpers
// used across the IvyCraft client layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// ErrBusy is returned when a login or signup is already in flight.
	ErrBusy = errors.New("session operation in progress")

	// ErrSuperseded is returned by a login or signup that was overtaken by
	// a logout while it waited for the backend.
	ErrSuperseded = errors.New("superseded by logout")

	// Credential store errors. ErrStoreReadCorrupt never leaves the store:
	// an unreadable record is reported as an absent session.
	ErrStoreWriteFailed = errors.New("credential store write failed")
	ErrStoreReadCorrupt = errors.New("credential store record corrupt")
)
