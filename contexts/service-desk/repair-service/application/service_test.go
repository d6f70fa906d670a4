package application

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"crmgate/contexts/service-desk/repair-service/ports"
	"crmgate/internal/shared/envelope"
)

type fakeBackend struct {
	requests []envelope.Request
}

func (f *fakeBackend) Call(_ context.Context, req envelope.Request) envelope.Result {
	f.requests = append(f.requests, req)
	return envelope.Ok(json.RawMessage(`{}`))
}

func TestCreateRequiresCustomerAndDescription(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	for _, in := range []ports.CreateTicketInput{
		{},
		{CustomerID: "c-1"},
		{Description: "broken screen"},
	} {
		res := service.Create(context.Background(), in)
		if !res.IsValidation() {
			t.Fatalf("input %+v: expected validation failure, got %+v", in, res)
		}
	}
	if len(backend.requests) != 0 {
		t.Fatal("validation failures must not reach the backend")
	}
}

func TestAssignTechnicianPostsVerb(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.AssignTechnician(context.Background(), "r-1", "sam")
	if !res.Success {
		t.Fatalf("expected success, got %+v", res.Error)
	}
	req := backend.requests[0]
	if req.Method != http.MethodPost || req.Path != "/api/v1/repairs/r-1/technician" {
		t.Fatalf("unexpected call: %s %s", req.Method, req.Path)
	}
	if req.Body.(map[string]any)["technician"] != "sam" {
		t.Fatalf("unexpected body: %v", req.Body)
	}
}

func TestUpdateStatusPatchesVerb(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.UpdateStatus(context.Background(), "r-1", "in_progress")
	req := backend.requests[0]
	if req.Method != http.MethodPatch || req.Path != "/api/v1/repairs/r-1/status" {
		t.Fatalf("unexpected call: %s %s", req.Method, req.Path)
	}
}

func TestUpdateStatusRequiresStatus(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.UpdateStatus(context.Background(), "r-1", "  ")
	if !res.IsValidation() {
		t.Fatalf("expected validation failure, got %+v", res)
	}
}

func TestAddPartRequiresName(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	res := service.AddPart(context.Background(), "r-1", ports.AddPartInput{})
	if !res.IsValidation() {
		t.Fatalf("expected validation failure, got %+v", res)
	}
}

func TestAddLogEntryOmitsAbsentMinutes(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.AddLogEntry(context.Background(), "r-1", ports.AddLogEntryInput{Note: "replaced fan"})
	req := backend.requests[0]
	if req.Path != "/api/v1/repairs/r-1/logs" || req.Method != http.MethodPost {
		t.Fatalf("unexpected call: %s %s", req.Method, req.Path)
	}
	body := req.Body.(map[string]any)
	if _, ok := body["minutes"]; ok {
		t.Fatalf("absent minutes must be omitted: %v", body)
	}
}

func TestListPartsUsesGET(t *testing.T) {
	backend := &fakeBackend{}
	service := Service{Backend: backend}

	service.ListParts(context.Background(), "r-2")
	req := backend.requests[0]
	if req.Path != "/api/v1/repairs/r-2/parts" {
		t.Fatalf("unexpected path: %s", req.Path)
	}
	if req.Body != nil {
		t.Fatalf("list must not carry a body: %v", req.Body)
	}
}
