package services

import "errors"

// Error taxonomy shared by every operation. Controllers map each kind to a
// distinct HTTP status; anything not in this set surfaces as a generic
// internal failure.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("resource conflict")
	ErrInvalidState = errors.New("invalid state")
)
