package services

import "errors"

// Sentinel errors controllers map onto HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("invalid_or_conflict")
	ErrUniqueCodeTaken    = errors.New("unique_code already taken")
)
