package services

import "errors"

// Sentinel errors controllers translate into HTTP statuses. Validation and
// forbidden both surface as 400, matching the wire contract clients rely on.
var (
	ErrValidation = errors.New("validation")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
)
