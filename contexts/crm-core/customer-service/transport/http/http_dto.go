package httptransport

// CreateCustomerRequest mirrors the backend CRM field names.
type CreateCustomerRequest struct {
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	CompanyName string `json:"companyname"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BirthDate   string `json:"birthdaydate"`
}
