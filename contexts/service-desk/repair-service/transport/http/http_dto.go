package httptransport

type CreateTicketRequest struct {
	CustomerID  string `json:"customerid"`
	Description string `json:"description"`
	DeviceType  string `json:"devicetype"`
	Priority    string `json:"priority"`
}

type AssignTechnicianRequest struct {
	Technician string `json:"technician"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AddPartRequest struct {
	Name     string   `json:"name"`
	Quantity *int     `json:"quantity"`
	Cost     *float64 `json:"cost"`
}

type AddLogEntryRequest struct {
	Note       string `json:"note"`
	Technician string `json:"technician"`
	Minutes    *int   `json:"minutes"`
}
