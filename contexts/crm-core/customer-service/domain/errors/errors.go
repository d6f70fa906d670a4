package errors

import "errors"

var (
	ErrNameRequired   = errors.New("firstname and lastname are required")
	ErrIDRequired     = errors.New("customer id is required")
	ErrNoUpdateFields = errors.New("no fields to update")
	ErrBadWindow      = errors.New("days must be between 0 and 366")
)
