package httpserver

import (
	"net/http"

	httptransport "crmgate/contexts/billing/invoice-service/transport/http"
)

func (s *Server) registerInvoiceRoutes() {
	s.mux.HandleFunc("GET /api/v1/invoices", s.handleListInvoices)
	s.mux.HandleFunc("POST /api/v1/invoices", s.handleCreateInvoice)
	s.mux.HandleFunc("GET /api/v1/invoices/{id}", s.handleGetInvoice)
	s.mux.HandleFunc("PUT /api/v1/invoices/{id}", s.handleUpdateInvoice)
	s.mux.HandleFunc("DELETE /api/v1/invoices/{id}", s.handleDeleteInvoice)
	s.mux.HandleFunc("GET /api/v1/invoices/{id}/items", s.handleListInvoiceItems)
	s.mux.HandleFunc("POST /api/v1/invoices/{id}/payments", s.handleMarkInvoicePaid)
}

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	pageSize, pageNumber, ok := pageParams(w, r)
	if !ok {
		return
	}
	res := s.modules.Invoices.Handler.ListInvoicesHandler(r.Context(), pageSize, pageNumber)
	writeResult(w, res, "invoices retrieved")
}

func (s *Server) handleGetInvoice(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Invoices.Handler.GetInvoiceHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "invoice retrieved")
}

func (s *Server) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req httptransport.CreateInvoiceRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Invoices.Handler.CreateInvoiceHandler(r.Context(), req)
	writeResult(w, res, "invoice created")
}

func (s *Server) handleUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeBody(r, &fields); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Invoices.Handler.UpdateInvoiceHandler(r.Context(), r.PathValue("id"), fields)
	writeResult(w, res, "invoice updated")
}

func (s *Server) handleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Invoices.Handler.DeleteInvoiceHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "invoice deleted")
}

func (s *Server) handleListInvoiceItems(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Invoices.Handler.ListInvoiceItemsHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "invoice items retrieved")
}

func (s *Server) handleMarkInvoicePaid(w http.ResponseWriter, r *http.Request) {
	var req httptransport.MarkPaidRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Invoices.Handler.MarkInvoicePaidHandler(r.Context(), r.PathValue("id"), req)
	writeResult(w, res, "invoice marked as paid")
}
