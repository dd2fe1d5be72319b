package services

import "errors"

// Sentinel errors the controllers translate into HTTP statuses.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrDuplicate     = errors.New("already exists")
	ErrValidation    = errors.New("validation failed")
	ErrUnknownPeriod = errors.New("period must be one of week, month, year, all")
)
