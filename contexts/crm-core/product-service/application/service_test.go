package application

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"crmgate/contexts/crm-core/product-service/ports"
	"crmgate/internal/shared/envelope"
)

type fakeBackend struct {
	requests []envelope.Request
	result   *envelope.Result
}

func (f *fakeBackend) Call(_ context.Context, req envelope.Request) envelope.Result {
	f.requests = append(f.requests, req)
	if f.result != nil {
		return *f.result
	}
	return envelope.Ok(json.RawMessage(`{}`))
}

func TestCreateRequiresName(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.Create(context.Background(), ports.CreateProductInput{Description: "nameless"})
	if !res.IsValidation() {
		t.Fatalf("expected validation failure, got %+v", res)
	}
	if len(backend.requests) != 0 {
		t.Fatal("validation failure must not reach the backend")
	}
}

func TestCreateOmitsAbsentPrice(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.Create(context.Background(), ports.CreateProductInput{Name: "A"})
	if !res.Success {
		t.Fatalf("expected success, got %+v", res.Error)
	}
	body := backend.requests[0].Body.(map[string]any)
	if _, ok := body["price"]; ok {
		t.Fatalf("absent price must be omitted: %v", body)
	}
	if body["name"] != "A" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestUpdateStripsID(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.Update(context.Background(), "p-1", map[string]any{"id": "X", "name": "foo"})
	req := backend.requests[0]
	if req.Method != http.MethodPut || req.Path != "/api/v1/products/p-1" {
		t.Fatalf("unexpected call: %s %s", req.Method, req.Path)
	}
	if _, ok := req.Body.(map[string]any)["id"]; ok {
		t.Fatalf("id must be stripped from the body: %v", req.Body)
	}
}

func TestDeleteUsesDELETEWithoutBody(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.Delete(context.Background(), "p-1")
	req := backend.requests[0]
	if req.Method != http.MethodDelete {
		t.Fatalf("expected DELETE, got %s", req.Method)
	}
	if req.Body != nil {
		t.Fatalf("delete must not carry a body: %v", req.Body)
	}
}

func TestGetRequiresID(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.Get(context.Background(), "  ")
	if !res.IsValidation() {
		t.Fatalf("expected validation failure, got %+v", res)
	}
}
