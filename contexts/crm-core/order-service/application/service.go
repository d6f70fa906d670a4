package application

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	domainerrors "crmgate/contexts/crm-core/order-service/domain/errors"
	"crmgate/contexts/crm-core/order-service/ports"
	"crmgate/internal/shared/envelope"
)

const recordPath = "/api/v1/orders"

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

func (s Service) Create(ctx context.Context, in ports.CreateOrderInput) envelope.Result {
	if strings.TrimSpace(in.AccountID) == "" || strings.TrimSpace(in.CompanyName) == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrAccountRequired.Error())
	}
	body := map[string]any{
		"accountid":   in.AccountID,
		"companyname": in.CompanyName,
	}
	if in.Status != "" {
		body["status"] = in.Status
	}
	if in.Notes != "" {
		body["notes"] = in.Notes
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

// ListItems lists the line items of one order. One backend call, no fan-out.
func (s Service) ListItems(ctx context.Context, orderID string) envelope.Result {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrIDRequired.Error())
	}
	return s.Backend.Call(ctx, envelope.Request{
		Path: recordPath + "/" + url.PathEscape(orderID) + "/items",
	})
}
