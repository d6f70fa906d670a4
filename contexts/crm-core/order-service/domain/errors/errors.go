package errors

import "errors"

var (
	ErrAccountRequired = errors.New("accountid and companyname are required")
	ErrIDRequired      = errors.New("order id is required")
	ErrNoUpdateFields  = errors.New("no fields to update")
)
