package httpserver

import (
	"net/http"

	httptransport "crmgate/contexts/crm-core/order-service/transport/http"
)

func (s *Server) registerOrderRoutes() {
	s.mux.HandleFunc("GET /api/v1/orders", s.handleListOrders)
	s.mux.HandleFunc("POST /api/v1/orders", s.handleCreateOrder)
	s.mux.HandleFunc("GET /api/v1/orders/{id}", s.handleGetOrder)
	s.mux.HandleFunc("PUT /api/v1/orders/{id}", s.handleUpdateOrder)
	s.mux.HandleFunc("DELETE /api/v1/orders/{id}", s.handleDeleteOrder)
	s.mux.HandleFunc("GET /api/v1/orders/{id}/items", s.handleListOrderItems)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	pageSize, pageNumber, ok := pageParams(w, r)
	if !ok {
		return
	}
	res := s.modules.Orders.Handler.ListOrdersHandler(r.Context(), pageSize, pageNumber)
	writeResult(w, res, "orders retrieved")
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Orders.Handler.GetOrderHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "order retrieved")
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req httptransport.CreateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Orders.Handler.CreateOrderHandler(r.Context(), req)
	writeResult(w, res, "order created")
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeBody(r, &fields); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Orders.Handler.UpdateOrderHandler(r.Context(), r.PathValue("id"), fields)
	writeResult(w, res, "order updated")
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Orders.Handler.DeleteOrderHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "order deleted")
}

func (s *Server) handleListOrderItems(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Orders.Handler.ListOrderItemsHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "order items retrieved")
}
