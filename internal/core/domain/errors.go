package domain

import "errors"

// Sentinel errors surfaced by services and repositories. The transport layer
// maps each to a fixed status code; raw store errors never cross that
// boundary. A lookup that misses and a lookup scoped to the wrong owner
// return the same NotFound sentinel so existence never leaks.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProfileExists      = errors.New("profile already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrRenderFailed       = errors.New("document rendering failed")
)
