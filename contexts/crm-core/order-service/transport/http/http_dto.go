package httptransport

type CreateOrderRequest struct {
	AccountID   string `json:"accountid"`
	CompanyName string `json:"companyname"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}
