package domain

import "errors"

// Sentinel errors for domain-level discrimination. Services wrap these with
// %w so handlers can map them to HTTP status codes without knowing which
// store produced them.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
)
