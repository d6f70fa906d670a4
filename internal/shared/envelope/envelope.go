package envelope

import (
	"encoding/json"
	"fmt"
)

// Package envelope defines the uniform result of one backend CRM call and the
// descriptor used to make it. Every layer passes Result through unchanged:
// failure is always a value, never a panic and never a Go error crossing the
// gateway boundary.

// Error codes manufactured locally (never by the backend).
const (
	// CodeValidation marks a failure produced before any backend call was made.
	// HTTP handlers map it to a client error.
	CodeValidation = "validation_error"
	// CodeForbidden marks a pass-through call rejected by the allow-list.
	CodeForbidden = "forbidden"
	// CodeUnknown is used when no HTTP status is available (transport failure,
	// unreadable response body).
	CodeUnknown = "unknown"
)

// CallError carries the normalized failure of a backend call.
type CallError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the envelope every backend call resolves to. Exactly one of Data
// (on success) or Error (on failure) is meaningful; Success is the
// discriminant.
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *CallError      `json:"error,omitempty"`
}

// Request describes one backend CRM call. Path is relative to the configured
// base URL and may already carry a query string; the caller is responsible for
// encoding any values it interpolates.
type Request struct {
	Path   string
	Method string
	Body   any
}

// Ok wraps an already-serialized payload in a successful Result.
func Ok(data json.RawMessage) Result {
	return Result{Success: true, Data: data}
}

// OkValue marshals v and wraps it in a successful Result. A value that cannot
// be marshaled yields a CodeUnknown failure instead of an error return, so
// callers keep the never-throws contract.
func OkValue(v any) Result {
	data, err := json.Marshal(v)
	if err != nil {
		return Failf(CodeUnknown, "encode result: %v", err)
	}
	return Ok(data)
}

// Fail builds a failed Result with the given code and message.
func Fail(code, message string) Result {
	if message == "" {
		message = "Unknown error occurred"
	}
	return Result{Success: false, Error: &CallError{Code: code, Message: message}}
}

// Failf is Fail with formatting.
func Failf(code, format string, args ...any) Result {
	return Fail(code, fmt.Sprintf(format, args...))
}

// Decode unmarshals the success payload into dst.
func (r Result) Decode(dst any) error {
	if !r.Success {
		return fmt.Errorf("decode failed result: %s", r.ErrorMessage())
	}
	if len(r.Data) == 0 {
		return fmt.Errorf("decode empty result payload")
	}
	return json.Unmarshal(r.Data, dst)
}

// ErrorMessage returns the failure message, or "" for a successful Result.
func (r Result) ErrorMessage() string {
	if r.Error == nil {
		return ""
	}
	return r.Error.Message
}

// ErrorCode returns the failure code, or "" for a successful Result.
func (r Result) ErrorCode() string {
	if r.Error == nil {
		return ""
	}
	return r.Error.Code
}

// IsValidation reports whether the Result is a locally manufactured
// validation failure.
func (r Result) IsValidation() bool {
	return !r.Success && r.ErrorCode() == CodeValidation
}

// SanitizeUpdate returns a copy of fields with every absent (nil) value
// removed and any caller-supplied id stripped, so the path-supplied id stays
// authoritative and a partial update never clears a field by accident.
func SanitizeUpdate(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}
