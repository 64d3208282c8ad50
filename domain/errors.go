package domain

import "errors"

var (
	// ErrValidation indicates a missing or malformed required field.
	ErrValidation = errors.New("validation failed")
	// ErrConflict indicates a duplicate unique key.
	ErrConflict = errors.New("conflict")
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated indicates a missing, invalid or expired token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden indicates a valid identity lacking the required privilege.
	ErrForbidden = errors.New("forbidden")
)
