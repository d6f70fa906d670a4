package application

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	domainerrors "crmgate/contexts/service-desk/repair-service/domain/errors"
	"crmgate/contexts/service-desk/repair-service/ports"
	"crmgate/internal/shared/envelope"
)

const recordPath = "/api/v1/repairs"

type Service struct {
	Backend ports.Backend
	Logger  *slog.Logger
}

func (s Service) List(ctx context.Context, page ports.Pagination) envelope.Result {
	values := url.Values{}
	if page.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(page.PageSize))
	}
	if page.PageNumber > 0 {
		values.Set("pageNumber", strconv.Itoa(page.PageNumber))
	}
	path := recordPath
	if len(values) > 0 {
		path += "?" + values.Encode()
	}
	return s.Backend.Call(ctx, envelope.Request{Path: path})
}

func (s Service) Get(ctx context.Context, id string) envelope.Result {
	id = strings.TrimSpace(id)
	if id == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrIDRequired.Error())
	}
	return s.Backend.Call(ctx, envelope.Request{Path: recordPath + "/" + url.PathEscape(id)})
}

func (s Service) Create(ctx context.Context, in ports.CreateTicketInput) envelope.Result {
	if strings.TrimSpace(in.CustomerID) == "" || strings.TrimSpace(in.Description) == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrTicketFieldsRequired.Error())
	}
	body := map[string]any{
		"customerid":  in.CustomerID,
		"description": in.Description,
	}
	if in.DeviceType != "" {
		body["devicetype"] = in.DeviceType
	}
	if in.Priority != "" {
		body["priority"] = in.Priority
	}
	return s.Backend.Call(ctx, envelope.Request{Path: recordPath, Method: http.MethodPost, Body: body})
}

func (s Service) Update(ctx context.Context, id string, fields map[string]any) envelope.Result {
	id = strings.TrimSpace(id)
	if id == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrIDRequired.Error())
	}
	body := envelope.SanitizeUpdate(fields)
	if len(body) == 0 {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrNoUpdateFields.Error())
	}
	return s.Backend.Call(ctx, envelope.Request{
		Path:   recordPath + "/" + url.PathEscape(id),
		Method: http.MethodPut,
		Body:   body,
	})
}

func (s Service) Delete(ctx context.Context, id string) envelope.Result {
	id = strings.TrimSpace(id)
	if id == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrIDRequired.Error())
	}
	return s.Backend.Call(ctx, envelope.Request{
		Path:   recordPath + "/" + url.PathEscape(id),
		Method: http.MethodDelete,
	})
}

// AssignTechnician sets the technician responsible for a ticket.
func (s Service) AssignTechnician(ctx context.Context, id, technician string) envelope.Result {
	id = strings.TrimSpace(id)
	if id == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrIDRequired.Error())
	}
	technician = strings.TrimSpace(technician)
	if technician == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrTechnicianRequired.Error())
	}
	return s.Backend.Call(ctx, envelope.Request{
		Path:   recordPath + "/" + url.PathEscape(id) + "/technician",
		Method: http.MethodPost,
		Body:   map[string]any{"technician": technician},
	})
}

// UpdateStatus moves a ticket through the repair workflow.
func (s Service) UpdateStatus(ctx context.Context, id, status string) envelope.Result {
	id = strings.TrimSpace(id)
	if id == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrIDRequired.Error())
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrStatusRequired.Error())
	}
	return s.Backend.Call(ctx, envelope.Request{
		Path:   recordPath + "/" + url.PathEscape(id) + "/status",
		Method: http.MethodPatch,
		Body:   map[string]any{"status": status},
	})
}

func (s Service) ListParts(ctx context.Context, id string) envelope.Result {
	id = strings.TrimSpace(id)
	if id == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrIDRequired.Error())
	}
	return s.Backend.Call(ctx, envelope.Request{
		Path: recordPath + "/" + url.PathEscape(id) + "/parts",
	})
}

func (s Service) AddPart(ctx context.Context, id string, in ports.AddPartInput) envelope.Result {
	id = strings.TrimSpace(id)
	if id == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrIDRequired.Error())
	}
	if strings.TrimSpace(in.Name) == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrPartNameRequired.Error())
	}
	body := map[string]any{"name": in.Name}
	if in.Quantity != nil {
		body["quantity"] = *in.Quantity
	}
	if in.Cost != nil {
		body["cost"] = *in.Cost
	}
	return s.Backend.Call(ctx, envelope.Request{
		Path:   recordPath + "/" + url.PathEscape(id) + "/parts",
		Method: http.MethodPost,
		Body:   body,
	})
}

func (s Service) ListLog(ctx context.Context, id string) envelope.Result {
	id = strings.TrimSpace(id)
	if id == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrIDRequired.Error())
	}
	return s.Backend.Call(ctx, envelope.Request{
		Path: recordPath + "/" + url.PathEscape(id) + "/logs",
	})
}

func (s Service) AddLogEntry(ctx context.Context, id string, in ports.AddLogEntryInput) envelope.Result {
	id = strings.TrimSpace(id)
	if id == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrIDRequired.Error())
	}
	if strings.TrimSpace(in.Note) == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrLogNoteRequired.Error())
	}
	body := map[string]any{"note": in.Note}
	if in.Technician != "" {
		body["technician"] = in.Technician
	}
	if in.Minutes != nil {
		body["minutes"] = *in.Minutes
	}
	return s.Backend.Call(ctx, envelope.Request{
		Path:   recordPath + "/" + url.PathEscape(id) + "/logs",
		Method: http.MethodPost,
		Body:   body,
	})
}
