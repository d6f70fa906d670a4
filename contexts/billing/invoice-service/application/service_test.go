package application

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"crmgate/contexts/billing/invoice-service/ports"
	"crmgate/internal/shared/envelope"
)

type fakeBackend struct {
	requests []envelope.Request
}

func (f *fakeBackend) Call(_ context.Context, req envelope.Request) envelope.Result {
	f.requests = append(f.requests, req)
	return envelope.Ok(json.RawMessage(`{}`))
}

func TestCreateRequiresAccount(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.Create(context.Background(), ports.CreateInvoiceInput{Notes: "n"})
	if !res.IsValidation() {
		t.Fatalf("expected validation failure, got %+v", res)
	}
	if len(backend.requests) != 0 {
		t.Fatal("validation failure must not reach the backend")
	}
}

func TestMarkPaidPostsToPaymentsVerb(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.MarkPaid(context.Background(), "inv-1", ports.MarkPaidInput{PaymentMethod: "card"})
	if !res.Success {
		t.Fatalf("expected success, got %+v", res.Error)
	}
	req := backend.requests[0]
	if req.Method != http.MethodPost || req.Path != "/api/v1/invoices/inv-1/payments" {
		t.Fatalf("unexpected call: %s %s", req.Method, req.Path)
	}
	body := req.Body.(map[string]any)
	if body["status"] != "paid" || body["paymentmethod"] != "card" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["reference"]; ok {
		t.Fatalf("absent reference must be omitted: %v", body)
	}
}

func TestListItemsBuildsNestedPath(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.ListItems(context.Background(), "inv-2")
	if got := backend.requests[0].Path; got != "/api/v1/invoices/inv-2/items" {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestUpdateStripsID(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.Update(context.Background(), "inv-2", map[string]any{"id": "evil", "duedate": "2026-10-01"})
	body := backend.requests[0].Body.(map[string]any)
	if _, ok := body["id"]; ok {
		t.Fatalf("id must be stripped: %v", body)
	}
}
