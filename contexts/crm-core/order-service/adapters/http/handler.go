package httpadapter

import (
	"context"
	"log/slog"

	"crmgate/contexts/crm-core/order-service/application"
	"crmgate/contexts/crm-core/order-service/ports"
	httptransport "crmgate/contexts/crm-core/order-service/transport/http"
	"crmgate/internal/shared/envelope"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNumber query int false "Page number"
// @Router /orders [get]
func (h Handler) ListOrdersHandler(ctx context.Context, pageSize, pageNumber int) envelope.Result {
	return h.Service.List(ctx, ports.Pagination{PageSize: pageSize, PageNumber: pageNumber})
}

// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path string true "Order id"
// @Router /orders/{id} [get]
func (h Handler) GetOrderHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.Get(ctx, id)
}

// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Router /orders [post]
func (h Handler) CreateOrderHandler(ctx context.Context, req httptransport.CreateOrderRequest) envelope.Result {
	return h.Service.Create(ctx, ports.CreateOrderInput{
		AccountID:   req.AccountID,
		CompanyName: req.CompanyName,
		Status:      req.Status,
		Notes:       req.Notes,
	})
}

// @Summary Update an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order id"
// @Router /orders/{id} [put]
func (h Handler) UpdateOrderHandler(ctx context.Context, id string, fields map[string]any) envelope.Result {
	return h.Service.Update(ctx, id, fields)
}

// @Summary Delete an order
// @Tags orders
// @Produce json
// @Param id path string true "Order id"
// @Router /orders/{id} [delete]
func (h Handler) DeleteOrderHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.Delete(ctx, id)
}

// @Summary List items of an order
// @Tags orders
// @Produce json
// @Param id path string true "Order id"
// @Router /orders/{id}/items [get]
func (h Handler) ListOrderItemsHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.ListItems(ctx, id)
}
