package httpadapter

import (
	"context"
	"log/slog"

	"crmgate/contexts/integration/passthrough-service/application"
	"crmgate/contexts/integration/passthrough-service/ports"
	httptransport "crmgate/contexts/integration/passthrough-service/transport/http"
	"crmgate/internal/shared/envelope"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary Forward a raw call to the backend CRM
// @Tags proxy
// @Accept json
// @Produce json
// @Router /proxy [post]
func (h Handler) ForwardHandler(ctx context.Context, req httptransport.ForwardRequest) envelope.Result {
	var payload any
	if len(req.Payload) > 0 {
		payload = req.Payload
	}
	return h.Service.Forward(ctx, ports.ForwardInput{
		Endpoint: req.Endpoint,
		Method:   req.Method,
		Payload:  payload,
	})
}
