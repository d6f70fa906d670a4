package errors

import "errors"

var (
	ErrEndpointRequired = errors.New("endpoint is required")
	ErrBadMethod        = errors.New("method must be one of GET, POST, PUT, DELETE, PATCH")
	ErrNotAllowed       = errors.New("endpoint is not on the forwarding allow-list")
)
