package domain

import "errors"

// Sentinel errors returned by repositories and services. Callers match them with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrInvalidInput      = errors.New("invalid input")
)
