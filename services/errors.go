package services

import "errors"

// The error taxonomy the controllers map to HTTP responses. Anything not
// wrapping one of these is treated as unexpected, logged and surfaced
// generically. The services never retry.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrNotAuthorized = errors.New("bearer token unrecognized")
	ErrConflict      = errors.New("uniqueness constraint violated")
	ErrValidation    = errors.New("invalid input")
)
