package model

import "errors"

// Outcome kinds surfaced by the board and identity layers. Callers match
// them with errors.Is and map them to user-facing responses.
var (
	ErrValidation     = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("admin required")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrConflict       = errors.New("already exists")
	ErrPersistence    = errors.New("storage failure")
)
