package application

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	domainerrors "crmgate/contexts/crm-core/inventory-service/domain/errors"
	"crmgate/contexts/crm-core/inventory-service/ports"
	"crmgate/internal/shared/envelope"
)

const recordPath = "/api/v1/inventory"

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

func (s Service) Create(ctx context.Context, in ports.CreateItemInput) envelope.Result {
	if strings.TrimSpace(in.Name) == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrNameRequired.Error())
	}
	body := map[string]any{"name": in.Name}
	if in.Description != "" {
		body["description"] = in.Description
	}
	if in.SKU != "" {
		body["sku"] = in.SKU
	}
	if in.Price != nil {
		body["price"] = *in.Price
	}
	if in.Quantity != nil {
		body["quantity"] = *in.Quantity
	}
	if in.Location != "" {
		body["location"] = in.Location
	}
	if in.ReorderLevel != nil {
		body["reorderlevel"] = *in.ReorderLevel
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

// AdjustStock applies a signed quantity delta to one item via the CRM's
// adjust endpoint.
func (s Service) AdjustStock(ctx context.Context, id string, in ports.AdjustInput) envelope.Result {
	id = strings.TrimSpace(id)
	if id == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrIDRequired.Error())
	}
	if in.Delta == 0 {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrZeroDelta.Error())
	}
	body := map[string]any{"delta": in.Delta}
	if in.Reason != "" {
		body["reason"] = in.Reason
	}
	return s.Backend.Call(ctx, envelope.Request{
		Path:   recordPath + "/" + url.PathEscape(id) + "/adjust",
		Method: http.MethodPost,
		Body:   body,
	})
}
