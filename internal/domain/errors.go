package domain

import "errors"

// Error kinds the boundary layer translates into user-facing responses.
// Everything here is recoverable; nothing in the core terminates the process.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrBadCreds     = errors.New("invalid username or password")
)
