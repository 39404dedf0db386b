package client

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for any pair outside the
	// backend's allow-list.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmptyEmail is returned by Signup when no email is given.
	ErrEmptyEmail = errors.New("email is required")
)
