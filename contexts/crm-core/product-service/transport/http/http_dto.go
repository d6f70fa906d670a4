package httptransport

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SKU         string   `json:"sku"`
	Price       *float64 `json:"price"`
}
