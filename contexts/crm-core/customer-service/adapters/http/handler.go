package httpadapter

import (
	"context"
	"log/slog"

	"crmgate/contexts/crm-core/customer-service/application"
	"crmgate/contexts/crm-core/customer-service/ports"
	httptransport "crmgate/contexts/crm-core/customer-service/transport/http"
	"crmgate/internal/shared/envelope"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNumber query int false "Page number"
// @Router /customers [get]
func (h Handler) ListCustomersHandler(ctx context.Context, pageSize, pageNumber int) envelope.Result {
	return h.Service.List(ctx, ports.Pagination{PageSize: pageSize, PageNumber: pageNumber})
}

// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer id"
// @Router /customers/{id} [get]
func (h Handler) GetCustomerHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.Get(ctx, id)
}

// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Router /customers [post]
func (h Handler) CreateCustomerHandler(ctx context.Context, req httptransport.CreateCustomerRequest) envelope.Result {
	return h.Service.Create(ctx, ports.CreateCustomerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Phone:       req.Phone,
		BirthDate:   req.BirthDate,
	})
}

// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer id"
// @Router /customers/{id} [put]
func (h Handler) UpdateCustomerHandler(ctx context.Context, id string, fields map[string]any) envelope.Result {
	return h.Service.Update(ctx, id, fields)
}

// @Summary Delete a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer id"
// @Router /customers/{id} [delete]
func (h Handler) DeleteCustomerHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.Delete(ctx, id)
}

// @Summary Quick-search customers
// @Tags customers
// @Produce json
// @Param q query string false "Starts-with text"
// @Param pageSize query int false "Page size (max 50)"
// @Router /customers/search [get]
func (h Handler) SearchCustomersHandler(ctx context.Context, req ports.SearchInput) envelope.Result {
	return h.Service.Search(ctx, req)
}

// @Summary Customers with upcoming birthdays
// @Tags customers
// @Produce json
// @Param days query int false "Window in days"
// @Router /customers/birthdays [get]
func (h Handler) UpcomingBirthdaysHandler(ctx context.Context, windowDays int) envelope.Result {
	return h.Service.UpcomingBirthdays(ctx, windowDays)
}
