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

// ProductFields is the product-shaped subset of an inventory item.
type ProductFields struct {
	Name        string
	Description string
	SKU         string
	Price       *float64
}

// CreateItemInput is a product plus stock bookkeeping. Inventory items extend
// the product field set with explicit types instead of duck-typed maps.
type CreateItemInput struct {
	ProductFields
	Quantity     *int
	Location     string
	ReorderLevel *int
}

// AdjustInput is the delta applied by the adjust-stock verb.
type AdjustInput struct {
	Delta  int
	Reason string
}
