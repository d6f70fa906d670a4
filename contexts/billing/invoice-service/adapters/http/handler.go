package httpadapter

import (
	"context"
	"log/slog"

	"crmgate/contexts/billing/invoice-service/application"
	"crmgate/contexts/billing/invoice-service/ports"
	httptransport "crmgate/contexts/billing/invoice-service/transport/http"
	"crmgate/internal/shared/envelope"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param pageSize query int false "Page size"
// @Param pageNumber query int false "Page number"
// @Router /invoices [get]
func (h Handler) ListInvoicesHandler(ctx context.Context, pageSize, pageNumber int) envelope.Result {
	return h.Service.List(ctx, ports.Pagination{PageSize: pageSize, PageNumber: pageNumber})
}

// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice id"
// @Router /invoices/{id} [get]
func (h Handler) GetInvoiceHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.Get(ctx, id)
}

// @Summary Create an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Router /invoices [post]
func (h Handler) CreateInvoiceHandler(ctx context.Context, req httptransport.CreateInvoiceRequest) envelope.Result {
	return h.Service.Create(ctx, ports.CreateInvoiceInput{
		AccountID: req.AccountID,
		OrderID:   req.OrderID,
		DueDate:   req.DueDate,
		Notes:     req.Notes,
	})
}

// @Summary Update an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice id"
// @Router /invoices/{id} [put]
func (h Handler) UpdateInvoiceHandler(ctx context.Context, id string, fields map[string]any) envelope.Result {
	return h.Service.Update(ctx, id, fields)
}

// @Summary Delete an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice id"
// @Router /invoices/{id} [delete]
func (h Handler) DeleteInvoiceHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.Delete(ctx, id)
}

// @Summary List items of an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice id"
// @Router /invoices/{id}/items [get]
func (h Handler) ListInvoiceItemsHandler(ctx context.Context, id string) envelope.Result {
	return h.Service.ListItems(ctx, id)
}

// @Summary Mark an invoice paid
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice id"
// @Router /invoices/{id}/payments [post]
func (h Handler) MarkInvoicePaidHandler(ctx context.Context, id string, req httptransport.MarkPaidRequest) envelope.Result {
	return h.Service.MarkPaid(ctx, id, ports.MarkPaidInput{
		PaymentMethod: req.PaymentMethod,
		PaidDate:      req.PaidDate,
		Reference:     req.Reference,
	})
}
