package envelope

import (
	"encoding/json"
	"testing"
)

func TestOkValueCarriesDataOnly(t *testing.T) {
	res := OkValue(map[string]string{"id": "42"})
	if !res.Success {
		t.Fatalf("expected success")
	}
	if res.Error != nil {
		t.Fatalf("expected no error, got %+v", res.Error)
	}
	var decoded map[string]string
	if err := res.Decode(&decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded["id"] != "42" {
		t.Fatalf("expected id 42, got %q", decoded["id"])
	}
}

func TestFailCarriesErrorOnly(t *testing.T) {
	res := Fail("404", "not found")
	if res.Success {
		t.Fatalf("expected failure")
	}
	if len(res.Data) != 0 {
		t.Fatalf("expected no data, got %s", res.Data)
	}
	if res.ErrorCode() != "404" || res.ErrorMessage() != "not found" {
		t.Fatalf("unexpected error: %+v", res.Error)
	}
}

func TestFailDefaultsMessage(t *testing.T) {
	res := Fail(CodeUnknown, "")
	if res.ErrorMessage() != "Unknown error occurred" {
		t.Fatalf("expected default message, got %q", res.ErrorMessage())
	}
}

func TestResultJSONShape(t *testing.T) {
	raw, err := json.Marshal(Fail("500", "boom"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var shape map[string]any
	if err := json.Unmarshal(raw, &shape); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := shape["data"]; ok {
		t.Fatalf("failed result must not serialize data: %s", raw)
	}
	if shape["success"] != false {
		t.Fatalf("expected success=false: %s", raw)
	}
}

func TestSanitizeUpdateStripsAbsentAndID(t *testing.T) {
	out := SanitizeUpdate(map[string]any{
		"id":    "X",
		"name":  "foo",
		"price": nil,
	})
	if _, ok := out["id"]; ok {
		t.Fatalf("id must be stripped: %v", out)
	}
	if _, ok := out["price"]; ok {
		t.Fatalf("absent field must be stripped: %v", out)
	}
	if out["name"] != "foo" {
		t.Fatalf("present field must survive: %v", out)
	}
}
