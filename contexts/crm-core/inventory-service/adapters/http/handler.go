package httpadapter

import (
	"context"
	"log/slog"

	"crmgate/contexts/crm-core/inventory-service/application"
	"crmgate/contexts/crm-core/inventory-service/ports"
	httptransport "crmgate/contexts/crm-core/inventory-service/transport/http"
	"crmgate/internal/shared/envelope"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary List inventory items
// @Tags inventory
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNumber query int false "Page number"
// @Router /inventory [get]
func (h Handler) ListItemsHandler(ctx context.Context, pageSize, pageNumber int) envelope.Result {
	return h.Service.List(ctx, ports.Pagination{PageSize: pageSize, PageNumber: pageNumber})
}

// @Summary Get an inventory item
// @Tags inventory
// @Produce json
// @Param id path string true "Item id"
// @Router /inventory/{id} [get]
func (h Handler) GetItemHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.Get(ctx, id)
}

// @Summary Create an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Router /inventory [post]
func (h Handler) CreateItemHandler(ctx context.Context, req httptransport.CreateItemRequest) envelope.Result {
	return h.Service.Create(ctx, ports.CreateItemInput{
		ProductFields: ports.ProductFields{
			Name:        req.Name,
			Description: req.Description,
			SKU:         req.SKU,
			Price:       req.Price,
		},
		Quantity:     req.Quantity,
		Location:     req.Location,
		ReorderLevel: req.ReorderLevel,
	})
}

// @Summary Update an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Router /inventory/{id} [put]
func (h Handler) UpdateItemHandler(ctx context.Context, id string, fields map[string]any) envelope.Result {
	return h.Service.Update(ctx, id, fields)
}

// @Summary Delete an inventory item
// @Tags inventory
// @Produce json
// @Param id path string true "Item id"
// @Router /inventory/{id} [delete]
func (h Handler) DeleteItemHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.Delete(ctx, id)
}

// @Summary Adjust stock level
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Router /inventory/{id}/adjust [post]
func (h Handler) AdjustStockHandler(ctx context.Context, id string, req httptransport.AdjustStockRequest) envelope.Result {
	return h.Service.AdjustStock(ctx, id, ports.AdjustInput{Delta: req.Delta, Reason: req.Reason})
}
