package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	invoiceservice "crmgate/contexts/billing/invoice-service"
	customerservice "crmgate/contexts/crm-core/customer-service"
	inventoryservice "crmgate/contexts/crm-core/inventory-service"
	orderservice "crmgate/contexts/crm-core/order-service"
	productservice "crmgate/contexts/crm-core/product-service"
	passthroughservice "crmgate/contexts/integration/passthrough-service"
	repairservice "crmgate/contexts/service-desk/repair-service"
	"crmgate/internal/shared/envelope"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "crmgate/internal/platform/httpserver/docs"
)

// Modules bundles every service module the server exposes.
type Modules struct {
	Customers   customerservice.Module
	Products    productservice.Module
	Orders      orderservice.Module
	Inventory   inventoryservice.Module
	Invoices    invoiceservice.Module
	Repairs     repairservice.Module
	Passthrough passthroughservice.Module
}

// Options are the server-level knobs; zero values mean defaults.
type Options struct {
	Addr           string
	RateLimitRPS   float64
	RateLimitBurst int
}

type Server struct {
	mux     *http.ServeMux
	handler http.Handler
	logger  *slog.Logger
	addr    string
	modules Modules
}

func New(modules Modules, logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	addr := opts.Addr
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		modules: modules,
	}
	s.registerRoutes()

	// Outer to inner: recover, CORS, request id, rate limit, access log.
	var handler http.Handler = s.mux
	handler = withAccessLog(logger, handler)
	if opts.RateLimitRPS > 0 {
		handler = withRateLimit(opts.RateLimitRPS, opts.RateLimitBurst, handler)
	}
	handler = withRequestID(handler)
	handler = withCORS(handler)
	handler = withRecover(logger, handler)
	s.handler = handler

	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.handler)
}

// Handler exposes the fully wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.registerCustomerRoutes()
	s.registerProductRoutes()
	s.registerOrderRoutes()
	s.registerInventoryRoutes()
	s.registerInvoiceRoutes()
	s.registerRepairRoutes()
	s.registerProxyRoutes()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// successResponse is the public happy-path envelope.
type successResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeResult translates a backend-call envelope into the public response
// shape: validation failures become client errors, allow-list denials become
// 403, everything else a 500 carrying the backend's message.
func writeResult(w http.ResponseWriter, res envelope.Result, successMessage string) {
	if res.Success {
		data := res.Data
		if len(data) == 0 {
			data = json.RawMessage("null")
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true, Data: data, Message: successMessage})
		return
	}

	status := http.StatusInternalServerError
	switch res.ErrorCode() {
	case envelope.CodeValidation:
		status = http.StatusBadRequest
	case envelope.CodeForbidden:
		status = http.StatusForbidden
	}
	message := res.ErrorMessage()
	if message == "" {
		message = "Unknown error occurred"
	}
	writeJSON(w, status, failureResponse{Success: false, Message: message})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, failureResponse{Success: false, Message: message})
}

// decodeBody reads a JSON request body into dst. An empty body is reported as
// an error: every POST/PUT route here requires one.
func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
