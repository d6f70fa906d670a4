package errors

import "errors"

var (
	ErrAccountRequired = errors.New("accountid is required")
	ErrIDRequired      = errors.New("invoice id is required")
	ErrNoUpdateFields  = errors.New("no fields to update")
)
