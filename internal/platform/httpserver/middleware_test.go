package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crmgate/internal/shared/envelope"
)

func TestCORSPreflightShortCircuits(t *testing.T) {
	srv := newTestServer(t, &fakeBackend{result: envelope.Ok(nil)}, nil, Options{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/customers", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatalf("missing allow-methods header")
	}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	srv := newTestServer(t, &fakeBackend{result: envelope.Ok(nil)}, nil, Options{})

	rec, _ := doRequest(t, srv, http.MethodGet, "/healthz", "")
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected a generated request id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-42")
	echo := httptest.NewRecorder()
	srv.Handler().ServeHTTP(echo, req)
	if got := echo.Header().Get(requestIDHeader); got != "req-42" {
		t.Fatalf("expected request id to be echoed, got %q", got)
	}
}

func TestRateLimitRejectsBurstOverflow(t *testing.T) {
	srv := newTestServer(t, &fakeBackend{result: envelope.Ok(nil)}, nil, Options{
		RateLimitRPS:   1,
		RateLimitBurst: 1,
	})

	first, _ := doRequest(t, srv, http.MethodGet, "/healthz", "")
	if first.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", first.Code)
	}
	second, _ := doRequest(t, srv, http.MethodGet, "/healthz", "")
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the burst is spent, got %d", second.Code)
	}
}
