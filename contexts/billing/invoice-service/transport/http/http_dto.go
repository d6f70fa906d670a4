package httptransport

type CreateInvoiceRequest struct {
	AccountID string `json:"accountid"`
	OrderID   string `json:"orderid"`
	DueDate   string `json:"duedate"`
	Notes     string `json:"notes"`
}

type MarkPaidRequest struct {
	PaymentMethod string `json:"paymentmethod"`
	PaidDate      string `json:"paiddate"`
	Reference     string `json:"reference"`
}
