package domain

import "errors"

// Validation errors surface to the caller with a 400 and their message.
// Auth errors carry the fixed user-facing strings so a failed sign-in
// never reveals which field was wrong.
var (
	ErrEmptyText          = errors.New("task text is required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already exists")
	ErrNotFound           = errors.New("not found")
)
