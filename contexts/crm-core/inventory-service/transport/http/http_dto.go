package httptransport

type CreateItemRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	SKU          string   `json:"sku"`
	Price        *float64 `json:"price"`
	Quantity     *int     `json:"quantity"`
	Location     string   `json:"location"`
	ReorderLevel *int     `json:"reorderlevel"`
}

type AdjustStockRequest struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}
