package errors

import "errors"

var (
	ErrNameRequired   = errors.New("name is required")
	ErrIDRequired     = errors.New("product id is required")
	ErrNoUpdateFields = errors.New("no fields to update")
)
