package services

import "errors"

var (
	// ErrUnauthenticated signals that an operation requiring ownership was
	// attempted without an active session.
	ErrUnauthenticated = errors.New("no active session")

	// ErrInvalidInput covers malformed or out-of-range request values.
	ErrInvalidInput = errors.New("invalid input")
)
