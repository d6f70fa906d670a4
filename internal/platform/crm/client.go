package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"crmgate/internal/shared/envelope"
)

// Client wraps outbound connectivity to the backend CRM. It is constructed
// once at process start and shared read-only across handlers.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL, token string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// HasToken reports whether an API token is configured. It is a
// misconfiguration probe only: calls proceed either way and an empty token
// simply fails against the backend.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// Call performs one backend CRM request and normalizes the outcome.
// It never returns a Go error: transport failures, unreadable bodies and
// non-2xx statuses all resolve to the envelope's error branch, so callers can
// treat the Result as total.
func (c *Client) Call(ctx context.Context, req envelope.Request) envelope.Result {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := c.baseURL + path

	var payload io.Reader
	// GET and DELETE never carry a body, even when one is supplied.
	if req.Body != nil && bodyAllowed(method) {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return envelope.Failf(envelope.CodeUnknown, "encode request body: %v", err)
		}
		payload = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return envelope.Failf(envelope.CodeUnknown, "build request: %v", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("crm call transport failure",
			"event", "crm_call_failed",
			"module", "internal/platform/crm",
			"layer", "platform",
			"method", method,
			"path", req.Path,
			"error", err,
		)
		return envelope.Fail(envelope.CodeUnknown, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope.Failf(envelope.CodeUnknown, "read response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		code := strconv.Itoa(resp.StatusCode)
		message := backendMessage(body)
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		c.logger.Warn("crm call rejected",
			"event", "crm_call_rejected",
			"module", "internal/platform/crm",
			"layer", "platform",
			"method", method,
			"path", req.Path,
			"status", resp.StatusCode,
		)
		return envelope.Fail(code, message)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return envelope.Ok(nil)
	}
	if !json.Valid(trimmed) {
		return envelope.Fail(envelope.CodeUnknown, "backend returned a non-JSON body")
	}
	return envelope.Ok(json.RawMessage(trimmed))
}

func bodyAllowed(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

// backendMessage digs a human-readable message out of a CRM error body.
// Known shapes: {"message": "..."}, {"error": {"message": "..."}} and
// {"error": "..."}.
func backendMessage(body []byte) string {
	var withMessage struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &withMessage); err == nil && withMessage.Message != "" {
		return withMessage.Message
	}

	var withNested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &withNested); err == nil && withNested.Error.Message != "" {
		return withNested.Error.Message
	}

	var withString struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &withString); err == nil && withString.Error != "" {
		return withString.Error
	}
	return ""
}
