package application

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"crmgate/contexts/crm-core/customer-service/ports"
	"crmgate/internal/shared/envelope"
)

type fakeBackend struct {
	requests []envelope.Request
	results  []envelope.Result
}

func (f *fakeBackend) Call(_ context.Context, req envelope.Request) envelope.Result {
	f.requests = append(f.requests, req)
	if len(f.results) == 0 {
		return envelope.Ok(json.RawMessage(`{}`))
	}
	res := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return res
}

func (f *fakeBackend) last(t *testing.T) envelope.Request {
	t.Helper()
	if len(f.requests) == 0 {
		t.Fatal("expected a backend call")
	}
	return f.requests[len(f.requests)-1]
}

func TestCreateRequiresName(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.Create(context.Background(), ports.CreateCustomerInput{FirstName: "Ada"})
	if res.Success {
		t.Fatal("expected validation failure")
	}
	if !res.IsValidation() {
		t.Fatalf("expected validation code, got %s", res.ErrorCode())
	}
	if len(backend.requests) != 0 {
		t.Fatalf("validation failure must not reach the backend, got %d calls", len(backend.requests))
	}
}

func TestCreateOmitsEmptyOptionalFields(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.Create(context.Background(), ports.CreateCustomerInput{FirstName: "Ada", LastName: "Lovelace"})
	if !res.Success {
		t.Fatalf("expected success, got %+v", res.Error)
	}

	req := backend.last(t)
	if req.Method != http.MethodPost || req.Path != "/api/v1/customers" {
		t.Fatalf("unexpected call: %s %s", req.Method, req.Path)
	}
	body := req.Body.(map[string]any)
	for _, field := range []string{"companyname", "email", "phone", "birthdaydate"} {
		if _, ok := body[field]; ok {
			t.Fatalf("empty field %s must be omitted: %v", field, body)
		}
	}
}

func TestUpdateStripsIDAndAbsentFields(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.Update(context.Background(), "c-9", map[string]any{
		"id":    "X",
		"email": "new@example.com",
		"phone": nil,
	})
	if !res.Success {
		t.Fatalf("expected success, got %+v", res.Error)
	}

	req := backend.last(t)
	if req.Method != http.MethodPut || req.Path != "/api/v1/customers/c-9" {
		t.Fatalf("unexpected call: %s %s", req.Method, req.Path)
	}
	body := req.Body.(map[string]any)
	if _, ok := body["id"]; ok {
		t.Fatalf("id must not reach the backend body: %v", body)
	}
	if _, ok := body["phone"]; ok {
		t.Fatalf("absent field must be stripped: %v", body)
	}
	if body["email"] != "new@example.com" {
		t.Fatalf("present field must survive: %v", body)
	}
}

func TestUpdateWithNothingLeftIsValidation(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.Update(context.Background(), "c-9", map[string]any{"id": "X", "phone": nil})
	if !res.IsValidation() {
		t.Fatalf("expected validation failure, got %+v", res)
	}
	if len(backend.requests) != 0 {
		t.Fatal("empty update must not reach the backend")
	}
}

func TestListBuildsPagedPath(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.List(context.Background(), ports.Pagination{PageSize: 25, PageNumber: 3})
	req := backend.last(t)
	if req.Path != "/api/v1/customers?pageNumber=3&pageSize=25" {
		t.Fatalf("unexpected path: %s", req.Path)
	}
	if req.Method != "" && req.Method != http.MethodGet {
		t.Fatalf("list must be a GET, got %q", req.Method)
	}
}

func TestSearchFilterORsFiveFields(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.Search(context.Background(), ports.SearchInput{Query: "john"})
	req := backend.last(t)
	if req.Method != http.MethodPost || req.Path != "/api/v1/query" {
		t.Fatalf("unexpected call: %s %s", req.Method, req.Path)
	}

	body := req.Body.(map[string]any)
	filter, _ := body["filter"].(string)
	want := "firstname start-with '%john' OR lastname start-with '%john' OR companyname start-with '%john' OR email start-with '%john' OR phone start-with '%john'"
	if filter != want {
		t.Fatalf("unexpected filter:\n got %q\nwant %q", filter, want)
	}
}

func TestSearchClampsPageSize(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.Search(context.Background(), ports.SearchInput{Query: "a", PageSize: 500})
	body := backend.last(t).Body.(map[string]any)
	if body["pageSize"] != 50 {
		t.Fatalf("expected pageSize clamped to 50, got %v", body["pageSize"])
	}
}

func TestSearchEscapesQuotes(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.Search(context.Background(), ports.SearchInput{Query: "o'brien"})
	filter := backend.last(t).Body.(map[string]any)["filter"].(string)
	if !strings.Contains(filter, "'%o''brien'") {
		t.Fatalf("quote must be doubled in filter: %q", filter)
	}
}

func TestSearchWithoutQueryOmitsFilter(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.Search(context.Background(), ports.SearchInput{})
	body := backend.last(t).Body.(map[string]any)
	if _, ok := body["filter"]; ok {
		t.Fatalf("empty query must not produce a filter: %v", body)
	}
	if body["sortBy"] != "lastname" || body["sortDirection"] != "asc" {
		t.Fatalf("unexpected sort defaults: %v", body)
	}
}

func TestFacadePassesBackendFailureThrough(t *testing.T) {
	backend := &fakeBackend{results: []envelope.Result{envelope.Fail("503", "backend down")}}
	service := Service{Backend: backend}

	res := service.Get(context.Background(), "c-1")
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.ErrorCode() != "503" || res.ErrorMessage() != "backend down" {
		t.Fatalf("envelope must pass through unchanged: %+v", res.Error)
	}
}

func TestGetEscapesID(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.Get(context.Background(), "c 1/x")
	if got := backend.last(t).Path; got != "/api/v1/customers/c%201%2Fx" {
		t.Fatalf("id must be path-escaped, got %s", got)
	}
}
