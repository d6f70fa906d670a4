package httpserver

import (
	"net/http"

	httptransport "crmgate/contexts/service-desk/repair-service/transport/http"
)

func (s *Server) registerRepairRoutes() {
	s.mux.HandleFunc("GET /api/v1/repairs", s.handleListTickets)
	s.mux.HandleFunc("POST /api/v1/repairs", s.handleCreateTicket)
	s.mux.HandleFunc("GET /api/v1/repairs/{id}", s.handleGetTicket)
	s.mux.HandleFunc("PUT /api/v1/repairs/{id}", s.handleUpdateTicket)
	s.mux.HandleFunc("DELETE /api/v1/repairs/{id}", s.handleDeleteTicket)
	s.mux.HandleFunc("POST /api/v1/repairs/{id}/technician", s.handleAssignTechnician)
	s.mux.HandleFunc("PATCH /api/v1/repairs/{id}/status", s.handleUpdateTicketStatus)
	s.mux.HandleFunc("GET /api/v1/repairs/{id}/parts", s.handleListTicketParts)
	s.mux.HandleFunc("POST /api/v1/repairs/{id}/parts", s.handleAddTicketPart)
	s.mux.HandleFunc("GET /api/v1/repairs/{id}/logs", s.handleListTicketLog)
	s.mux.HandleFunc("POST /api/v1/repairs/{id}/logs", s.handleAddTicketLogEntry)
}

func (s *Server) handleListTickets(w http.ResponseWriter, r *http.Request) {
	pageSize, pageNumber, ok := pageParams(w, r)
	if !ok {
		return
	}
	res := s.modules.Repairs.Handler.ListTicketsHandler(r.Context(), pageSize, pageNumber)
	writeResult(w, res, "repair tickets retrieved")
}

func (s *Server) handleGetTicket(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Repairs.Handler.GetTicketHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "repair ticket retrieved")
}

func (s *Server) handleCreateTicket(w http.ResponseWriter, r *http.Request) {
	var req httptransport.CreateTicketRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Repairs.Handler.CreateTicketHandler(r.Context(), req)
	writeResult(w, res, "repair ticket created")
}

func (s *Server) handleUpdateTicket(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeBody(r, &fields); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Repairs.Handler.UpdateTicketHandler(r.Context(), r.PathValue("id"), fields)
	writeResult(w, res, "repair ticket updated")
}

func (s *Server) handleDeleteTicket(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Repairs.Handler.DeleteTicketHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "repair ticket deleted")
}

func (s *Server) handleAssignTechnician(w http.ResponseWriter, r *http.Request) {
	var req httptransport.AssignTechnicianRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Repairs.Handler.AssignTechnicianHandler(r.Context(), r.PathValue("id"), req)
	writeResult(w, res, "technician assigned")
}

func (s *Server) handleUpdateTicketStatus(w http.ResponseWriter, r *http.Request) {
	var req httptransport.UpdateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Repairs.Handler.UpdateStatusHandler(r.Context(), r.PathValue("id"), req)
	writeResult(w, res, "repair status updated")
}

func (s *Server) handleListTicketParts(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Repairs.Handler.ListPartsHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "repair parts retrieved")
}

func (s *Server) handleAddTicketPart(w http.ResponseWriter, r *http.Request) {
	var req httptransport.AddPartRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Repairs.Handler.AddPartHandler(r.Context(), r.PathValue("id"), req)
	writeResult(w, res, "repair part added")
}

func (s *Server) handleListTicketLog(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Repairs.Handler.ListLogHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "repair log retrieved")
}

func (s *Server) handleAddTicketLogEntry(w http.ResponseWriter, r *http.Request) {
	var req httptransport.AddLogEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Repairs.Handler.AddLogEntryHandler(r.Context(), r.PathValue("id"), req)
	writeResult(w, res, "repair log entry added")
}
