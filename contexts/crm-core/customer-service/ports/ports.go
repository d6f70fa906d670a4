package ports

import (
	"context"

	"crmgate/internal/shared/envelope"
)

// Backend is the slice of the CRM gateway this service calls through.
type Backend interface {
	Call(ctx context.Context, req envelope.Request) envelope.Result
}

type Pagination struct {
	PageSize   int
	PageNumber int
}

type CreateCustomerInput struct {
	FirstName   string
	LastName    string
	CompanyName string
	Email       string
	Phone       string
	BirthDate   string
}

type SearchInput struct {
	Query         string
	PageSize      int
	SortBy        string
	SortDirection string
}
