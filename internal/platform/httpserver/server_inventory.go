package httpserver

import (
	"net/http"

	httptransport "crmgate/contexts/crm-core/inventory-service/transport/http"
)

func (s *Server) registerInventoryRoutes() {
	s.mux.HandleFunc("GET /api/v1/inventory", s.handleListInventory)
	s.mux.HandleFunc("POST /api/v1/inventory", s.handleCreateInventoryItem)
	s.mux.HandleFunc("GET /api/v1/inventory/{id}", s.handleGetInventoryItem)
	s.mux.HandleFunc("PUT /api/v1/inventory/{id}", s.handleUpdateInventoryItem)
	s.mux.HandleFunc("DELETE /api/v1/inventory/{id}", s.handleDeleteInventoryItem)
	s.mux.HandleFunc("POST /api/v1/inventory/{id}/adjust", s.handleAdjustStock)
}

func (s *Server) handleListInventory(w http.ResponseWriter, r *http.Request) {
	pageSize, pageNumber, ok := pageParams(w, r)
	if !ok {
		return
	}
	res := s.modules.Inventory.Handler.ListItemsHandler(r.Context(), pageSize, pageNumber)
	writeResult(w, res, "inventory items retrieved")
}

func (s *Server) handleGetInventoryItem(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Inventory.Handler.GetItemHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "inventory item retrieved")
}

func (s *Server) handleCreateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req httptransport.CreateItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Inventory.Handler.CreateItemHandler(r.Context(), req)
	writeResult(w, res, "inventory item created")
}

func (s *Server) handleUpdateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeBody(r, &fields); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Inventory.Handler.UpdateItemHandler(r.Context(), r.PathValue("id"), fields)
	writeResult(w, res, "inventory item updated")
}

func (s *Server) handleDeleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Inventory.Handler.DeleteItemHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "inventory item deleted")
}

func (s *Server) handleAdjustStock(w http.ResponseWriter, r *http.Request) {
	var req httptransport.AdjustStockRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Inventory.Handler.AdjustStockHandler(r.Context(), r.PathValue("id"), req)
	writeResult(w, res, "stock adjusted")
}
