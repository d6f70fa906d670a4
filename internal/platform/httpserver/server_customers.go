package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"crmgate/contexts/crm-core/customer-service/ports"
	httptransport "crmgate/contexts/crm-core/customer-service/transport/http"
)

func (s *Server) registerCustomerRoutes() {
	s.mux.HandleFunc("GET /api/v1/customers", s.handleListCustomers)
	s.mux.HandleFunc("POST /api/v1/customers", s.handleCreateCustomer)
	s.mux.HandleFunc("GET /api/v1/customers/search", s.handleSearchCustomers)
	s.mux.HandleFunc("GET /api/v1/customers/birthdays", s.handleUpcomingBirthdays)
	s.mux.HandleFunc("GET /api/v1/customers/{id}", s.handleGetCustomer)
	s.mux.HandleFunc("PUT /api/v1/customers/{id}", s.handleUpdateCustomer)
	s.mux.HandleFunc("DELETE /api/v1/customers/{id}", s.handleDeleteCustomer)
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	pageSize, pageNumber, ok := pageParams(w, r)
	if !ok {
		return
	}
	res := s.modules.Customers.Handler.ListCustomersHandler(r.Context(), pageSize, pageNumber)
	writeResult(w, res, "customers retrieved")
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Customers.Handler.GetCustomerHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "customer retrieved")
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req httptransport.CreateCustomerRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Customers.Handler.CreateCustomerHandler(r.Context(), req)
	writeResult(w, res, "customer created")
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeBody(r, &fields); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Customers.Handler.UpdateCustomerHandler(r.Context(), r.PathValue("id"), fields)
	writeResult(w, res, "customer updated")
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Customers.Handler.DeleteCustomerHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "customer deleted")
}

func (s *Server) handleSearchCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	in := ports.SearchInput{
		Query:         query.Get("q"),
		SortBy:        query.Get("sortBy"),
		SortDirection: query.Get("sortDirection"),
	}
	if raw := strings.TrimSpace(query.Get("pageSize")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(w, "pageSize must be an integer")
			return
		}
		in.PageSize = size
	}
	res := s.modules.Customers.Handler.SearchCustomersHandler(r.Context(), in)
	writeResult(w, res, "customers retrieved")
}

func (s *Server) handleUpcomingBirthdays(w http.ResponseWriter, r *http.Request) {
	days := 30
	if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(w, "days must be an integer")
			return
		}
		days = parsed
	}
	res := s.modules.Customers.Handler.UpcomingBirthdaysHandler(r.Context(), days)
	writeResult(w, res, "upcoming birthdays retrieved")
}

// pageParams parses the shared pageSize/pageNumber query parameters. A false
// return means a response was already written.
func pageParams(w http.ResponseWriter, r *http.Request) (pageSize, pageNumber int, ok bool) {
	query := r.URL.Query()
	if raw := strings.TrimSpace(query.Get("pageSize")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(w, "pageSize must be an integer")
			return 0, 0, false
		}
		pageSize = size
	}
	if raw := strings.TrimSpace(query.Get("pageNumber")); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(w, "pageNumber must be an integer")
			return 0, 0, false
		}
		pageNumber = number
	}
	return pageSize, pageNumber, true
}
