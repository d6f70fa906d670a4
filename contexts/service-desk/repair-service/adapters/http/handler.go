package httpadapter

import (
	"context"
	"log/slog"

	"crmgate/contexts/service-desk/repair-service/application"
	"crmgate/contexts/service-desk/repair-service/ports"
	httptransport "crmgate/contexts/service-desk/repair-service/transport/http"
	"crmgate/internal/shared/envelope"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary List repair tickets
// @Tags repairs
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNumber query int false "Page number"
// @Router /repairs [get]
func (h Handler) ListTicketsHandler(ctx context.Context, pageSize, pageNumber int) envelope.Result {
	return h.Service.List(ctx, ports.Pagination{PageSize: pageSize, PageNumber: pageNumber})
}

// @Summary Get a repair ticket
// @Tags repairs
// @Produce json
// @Param id path string true "Ticket id"
// @Router /repairs/{id} [get]
func (h Handler) GetTicketHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.Get(ctx, id)
}

// @Summary Create a repair ticket
// @Tags repairs
// @Accept json
// @Produce json
// @Router /repairs [post]
func (h Handler) CreateTicketHandler(ctx context.Context, req httptransport.CreateTicketRequest) envelope.Result {
	return h.Service.Create(ctx, ports.CreateTicketInput{
		CustomerID:  req.CustomerID,
		Description: req.Description,
		DeviceType:  req.DeviceType,
		Priority:    req.Priority,
	})
}

// @Summary Update a repair ticket
// @Tags repairs
// @Accept json
// @Produce json
// @Param id path string true "Ticket id"
// @Router /repairs/{id} [put]
func (h Handler) UpdateTicketHandler(ctx context.Context, id string, fields map[string]any) envelope.Result {
	return h.Service.Update(ctx, id, fields)
}

// @Summary Delete a repair ticket
// @Tags repairs
// @Produce json
// @Param id path string true "Ticket id"
// @Router /repairs/{id} [delete]
func (h Handler) DeleteTicketHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.Delete(ctx, id)
}

// @Summary Assign a technician
// @Tags repairs
// @Accept json
// @Produce json
// @Param id path string true "Ticket id"
// @Router /repairs/{id}/technician [post]
func (h Handler) AssignTechnicianHandler(ctx context.Context, id string, req httptransport.AssignTechnicianRequest) envelope.Result {
	return h.Service.AssignTechnician(ctx, id, req.Technician)
}

// @Summary Update ticket status
// @Tags repairs
// @Accept json
// @Produce json
// @Param id path string true "Ticket id"
// @Router /repairs/{id}/status [patch]
func (h Handler) UpdateStatusHandler(ctx context.Context, id string, req httptransport.UpdateStatusRequest) envelope.Result {
	return h.Service.UpdateStatus(ctx, id, req.Status)
}

// @Summary List parts used on a ticket
// @Tags repairs
// @Produce json
// @Param id path string true "Ticket id"
// @Router /repairs/{id}/parts [get]
func (h Handler) ListPartsHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.ListParts(ctx, id)
}

// @Summary Add a part to a ticket
// @Tags repairs
// @Accept json
// @Produce json
// @Param id path string true "Ticket id"
// @Router /repairs/{id}/parts [post]
func (h Handler) AddPartHandler(ctx context.Context, id string, req httptransport.AddPartRequest) envelope.Result {
	return h.Service.AddPart(ctx, id, ports.AddPartInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Cost:     req.Cost,
	})
}

// @Summary List work-log entries of a ticket
// @Tags repairs
// @Produce json
// @Param id path string true "Ticket id"
// @Router /repairs/{id}/logs [get]
func (h Handler) ListLogHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.ListLog(ctx, id)
}

// @Summary Add a work-log entry
// @Tags repairs
// @Accept json
// @Produce json
// @Param id path string true "Ticket id"
// @Router /repairs/{id}/logs [post]
func (h Handler) AddLogEntryHandler(ctx context.Context, id string, req httptransport.AddLogEntryRequest) envelope.Result {
	return h.Service.AddLogEntry(ctx, id, ports.AddLogEntryInput{
		Note:       req.Note,
		Technician: req.Technician,
		Minutes:    req.Minutes,
	})
}
