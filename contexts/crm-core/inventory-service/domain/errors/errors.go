package errors

import "errors"

var (
	ErrNameRequired   = errors.New("name is required")
	ErrIDRequired     = errors.New("inventory item id is required")
	ErrNoUpdateFields = errors.New("no fields to update")
	ErrZeroDelta      = errors.New("adjustment delta must be non-zero")
)
