package httpadapter

import (
	"context"
	"log/slog"

	"crmgate/contexts/crm-core/product-service/application"
	"crmgate/contexts/crm-core/product-service/ports"
	httptransport "crmgate/contexts/crm-core/product-service/transport/http"
	"crmgate/internal/shared/envelope"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary List products
// @Tags products
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNumber query int false "Page number"
// @Router /products [get]
func (h Handler) ListProductsHandler(ctx context.Context, pageSize, pageNumber int) envelope.Result {
	return h.Service.List(ctx, ports.Pagination{PageSize: pageSize, PageNumber: pageNumber})
}

// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product id"
// @Router /products/{id} [get]
func (h Handler) GetProductHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.Get(ctx, id)
}

// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Router /products [post]
func (h Handler) CreateProductHandler(ctx context.Context, req httptransport.CreateProductRequest) envelope.Result {
	return h.Service.Create(ctx, ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Price:       req.Price,
	})
}

// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product id"
// @Router /products/{id} [put]
func (h Handler) UpdateProductHandler(ctx context.Context, id string, fields map[string]any) envelope.Result {
	return h.Service.Update(ctx, id, fields)
}

// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path string true "Product id"
// @Router /products/{id} [delete]
func (h Handler) DeleteProductHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.Delete(ctx, id)
}
