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

type CreateInvoiceInput struct {
	AccountID string
	OrderID   string
	DueDate   string
	Notes     string
}

type MarkPaidInput struct {
	PaymentMethod string
	PaidDate      string
	Reference     string
}
