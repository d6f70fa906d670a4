package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	domainerrors "crmgate/contexts/crm-core/customer-service/domain/errors"
	"crmgate/contexts/crm-core/customer-service/ports"
	"crmgate/internal/shared/envelope"
)

const (
	recordPath = "/api/v1/customers"
	queryPath  = "/api/v1/query"

	maxSearchPageSize     = 50
	defaultSearchPageSize = 20
)

// searchFields are the five text fields a quick search matches against.
var searchFields = []string{"firstname", "lastname", "companyname", "email", "phone"}

// searchFieldList is what a search returns for each hit.
var searchFieldList = []string{"id", "firstname", "lastname", "companyname", "email", "phone", "birthdaydate"}

// Service is the customer facade: every method maps one domain operation to
// one backend call and passes the envelope through unchanged.
type Service struct {
	Backend ports.Backend
	Logger  *slog.Logger
}

func (s Service) List(ctx context.Context, page ports.Pagination) envelope.Result {
	return s.Backend.Call(ctx, envelope.Request{Path: listPath(page)})
}

func (s Service) Get(ctx context.Context, id string) envelope.Result {
	id = strings.TrimSpace(id)
	if id == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrIDRequired.Error())
	}
	return s.Backend.Call(ctx, envelope.Request{Path: recordPath + "/" + url.PathEscape(id)})
}

func (s Service) Create(ctx context.Context, in ports.CreateCustomerInput) envelope.Result {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrNameRequired.Error())
	}

	body := map[string]any{
		"firstname": in.FirstName,
		"lastname":  in.LastName,
	}
	if in.CompanyName != "" {
		body["companyname"] = in.CompanyName
	}
	if in.Email != "" {
		body["email"] = in.Email
	}
	if in.Phone != "" {
		body["phone"] = in.Phone
	}
	if in.BirthDate != "" {
		body["birthdaydate"] = in.BirthDate
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

// Search composes a structured filter query and sends it to the CRM query
// endpoint rather than the record endpoint. The free-text query is matched
// starts-with against the five designated text fields.
func (s Service) Search(ctx context.Context, in ports.SearchInput) envelope.Result {
	pageSize := in.PageSize
	if pageSize <= 0 {
		pageSize = defaultSearchPageSize
	}
	if pageSize > maxSearchPageSize {
		pageSize = maxSearchPageSize
	}

	sortBy := strings.TrimSpace(in.SortBy)
	if sortBy == "" {
		sortBy = "lastname"
	}
	direction := strings.ToLower(strings.TrimSpace(in.SortDirection))
	if direction != "desc" {
		direction = "asc"
	}

	body := map[string]any{
		"objectName":    "customer",
		"fieldList":     searchFieldList,
		"pageSize":      pageSize,
		"sortBy":        sortBy,
		"sortDirection": direction,
	}
	if q := strings.TrimSpace(in.Query); q != "" {
		body["filter"] = startsWithFilter(q)
	}

	return s.Backend.Call(ctx, envelope.Request{Path: queryPath, Method: http.MethodPost, Body: body})
}

// startsWithFilter ORs a starts-with predicate across the search fields,
// e.g. `firstname start-with '%john' OR lastname start-with '%john' OR ...`.
func startsWithFilter(q string) string {
	escaped := strings.ReplaceAll(q, "'", "''")
	clauses := make([]string, 0, len(searchFields))
	for _, field := range searchFields {
		clauses = append(clauses, fmt.Sprintf("%s start-with '%%%s'", field, escaped))
	}
	return strings.Join(clauses, " OR ")
}

func listPath(page ports.Pagination) string {
	values := url.Values{}
	if page.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(page.PageSize))
	}
	if page.PageNumber > 0 {
		values.Set("pageNumber", strconv.Itoa(page.PageNumber))
	}
	if len(values) == 0 {
		return recordPath
	}
	return recordPath + "?" + values.Encode()
}
