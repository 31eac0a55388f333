package domain

import "errors"

// Sentinel errors shared across services. The HTTP layer maps them onto
// status codes: 404, 422, 409, 401.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflicting resource state")
	ErrUnauthorized = errors.New("unauthorized")
)
