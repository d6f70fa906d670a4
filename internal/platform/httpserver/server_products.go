package httpserver

import (
	"net/http"

	httptransport "crmgate/contexts/crm-core/product-service/transport/http"
)

func (s *Server) registerProductRoutes() {
	s.mux.HandleFunc("GET /api/v1/products", s.handleListProducts)
	s.mux.HandleFunc("POST /api/v1/products", s.handleCreateProduct)
	s.mux.HandleFunc("GET /api/v1/products/{id}", s.handleGetProduct)
	s.mux.HandleFunc("PUT /api/v1/products/{id}", s.handleUpdateProduct)
	s.mux.HandleFunc("DELETE /api/v1/products/{id}", s.handleDeleteProduct)
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	pageSize, pageNumber, ok := pageParams(w, r)
	if !ok {
		return
	}
	res := s.modules.Products.Handler.ListProductsHandler(r.Context(), pageSize, pageNumber)
	writeResult(w, res, "products retrieved")
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Products.Handler.GetProductHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "product retrieved")
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req httptransport.CreateProductRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Products.Handler.CreateProductHandler(r.Context(), req)
	writeResult(w, res, "product created")
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeBody(r, &fields); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Products.Handler.UpdateProductHandler(r.Context(), r.PathValue("id"), fields)
	writeResult(w, res, "product updated")
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	res := s.modules.Products.Handler.DeleteProductHandler(r.Context(), r.PathValue("id"))
	writeResult(w, res, "product deleted")
}
