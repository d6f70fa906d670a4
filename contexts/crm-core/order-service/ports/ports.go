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

type CreateOrderInput struct {
	AccountID   string
	CompanyName string
	Status      string
	Notes       string
}
