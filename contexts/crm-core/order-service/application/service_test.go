package application

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"crmgate/contexts/crm-core/order-service/ports"
	"crmgate/internal/shared/envelope"
)

type fakeBackend struct {
	requests []envelope.Request
}

func (f *fakeBackend) Call(_ context.Context, req envelope.Request) envelope.Result {
	f.requests = append(f.requests, req)
	return envelope.Ok(json.RawMessage(`{}`))
}

func TestCreateRequiresAccountAndCompany(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	cases := []ports.CreateOrderInput{
		{},
		{AccountID: "a-1"},
		{CompanyName: "Acme"},
	}
	for _, in := range cases {
		res := service.Create(context.Background(), in)
		if !res.IsValidation() {
			t.Fatalf("input %+v: expected validation failure, got %+v", in, res)
		}
	}
	if len(backend.requests) != 0 {
		t.Fatal("validation failures must not reach the backend")
	}
}

func TestCreateSendsRequiredFields(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.Create(context.Background(), ports.CreateOrderInput{AccountID: "a-1", CompanyName: "Acme"})
	if !res.Success {
		t.Fatalf("expected success, got %+v", res.Error)
	}
	req := backend.requests[0]
	if req.Method != http.MethodPost || req.Path != "/api/v1/orders" {
		t.Fatalf("unexpected call: %s %s", req.Method, req.Path)
	}
	body := req.Body.(map[string]any)
	if body["accountid"] != "a-1" || body["companyname"] != "Acme" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestListItemsBuildsNestedPath(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.ListItems(context.Background(), "o-7")
	if got := backend.requests[0].Path; got != "/api/v1/orders/o-7/items" {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestUpdateStripsIDAndAbsent(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.Update(context.Background(), "o-7", map[string]any{"id": "other", "status": "shipped", "notes": nil})
	body := backend.requests[0].Body.(map[string]any)
	if _, ok := body["id"]; ok {
		t.Fatalf("id must be stripped: %v", body)
	}
	if _, ok := body["notes"]; ok {
		t.Fatalf("absent field must be stripped: %v", body)
	}
	if body["status"] != "shipped" {
		t.Fatalf("unexpected body: %v", body)
	}
}
