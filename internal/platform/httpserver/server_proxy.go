package httpserver

import (
	"net/http"

	httptransport "crmgate/contexts/integration/passthrough-service/transport/http"
)

func (s *Server) registerProxyRoutes() {
	s.mux.HandleFunc("POST /api/v1/proxy", s.handleProxyForward)
}

func (s *Server) handleProxyForward(w http.ResponseWriter, r *http.Request) {
	var req httptransport.ForwardRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	res := s.modules.Passthrough.Handler.ForwardHandler(r.Context(), req)
	writeResult(w, res, "request forwarded")
}
