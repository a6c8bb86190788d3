package model

import "errors"

// Domain error kinds. Services wrap them with context; the transport layer
// classifies them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrInvalidToken = errors.New("invalid token")
	ErrTooLarge     = errors.New("payload too large")
)
