package domain

import "errors"

// Error kinds surfaced by the ledger. All are recoverable by the caller.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownOwner       = errors.New("unknown account")
	ErrInvalidInput       = errors.New("invalid input")
)
