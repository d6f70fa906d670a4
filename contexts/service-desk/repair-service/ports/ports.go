package ports

import (
	"context"

	"crmgate/internal/shared/envelope"
)

type Backend interface {
	Call(ctx context.Context, req envelope.Request) envelope.Result
}

type Pagination struct {
	PageSize   int
	PageNumber int
}

type CreateTicketInput struct {
	CustomerID  string
	Description string
	DeviceType  string
	Priority    string
}

type AddPartInput struct {
	Name     string
	Quantity *int
	Cost     *float64
}

type AddLogEntryInput struct {
	Note       string
	Technician string
	Minutes    *int
}
