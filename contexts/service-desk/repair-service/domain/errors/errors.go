package errors

import "errors"

var (
	ErrTicketFieldsRequired = errors.New("customerid and description are required")
	ErrIDRequired           = errors.New("repair ticket id is required")
	ErrNoUpdateFields       = errors.New("no fields to update")
	ErrTechnicianRequired   = errors.New("technician is required")
	ErrStatusRequired       = errors.New("status is required")
	ErrPartNameRequired     = errors.New("part name is required")
	ErrLogNoteRequired      = errors.New("log note is required")
)
