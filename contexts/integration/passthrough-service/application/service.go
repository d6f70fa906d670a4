package application

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	domainerrors "crmgate/contexts/integration/passthrough-service/domain/errors"
	"crmgate/contexts/integration/passthrough-service/ports"
	"crmgate/internal/shared/envelope"
)

// Service forwards caller-described calls to the backend CRM with the
// server's credential. Because that credential is not the caller's, every
// forward must clear the allow-list first; with no rules configured the
// service denies everything.
type Service struct {
	Backend  ports.Backend
	Rules    []ports.Rule
	AllowAll bool
	Logger   *slog.Logger
}

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
	http.MethodPatch:  true,
}

func (s Service) Forward(ctx context.Context, in ports.ForwardInput) envelope.Result {
	endpoint := strings.TrimSpace(in.Endpoint)
	if endpoint == "" {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrEndpointRequired.Error())
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	method := strings.ToUpper(strings.TrimSpace(in.Method))
	if method == "" {
		method = http.MethodGet
	}
	if !allowedMethods[method] {
		return envelope.Fail(envelope.CodeValidation, domainerrors.ErrBadMethod.Error())
	}

	if !s.permitted(endpoint, method) {
		if s.Logger != nil {
			s.Logger.Warn("pass-through call denied",
				"event", "passthrough_denied",
				"module", "integration/passthrough-service",
				"layer", "application",
				"endpoint", endpoint,
				"method", method,
			)
		}
		return envelope.Fail(envelope.CodeForbidden, domainerrors.ErrNotAllowed.Error())
	}

	return s.Backend.Call(ctx, envelope.Request{Path: endpoint, Method: method, Body: in.Payload})
}

func (s Service) permitted(endpoint, method string) bool {
	if s.AllowAll {
		return true
	}
	for _, rule := range s.Rules {
		prefix := strings.TrimSpace(rule.Prefix)
		if prefix == "" || !strings.HasPrefix(endpoint, prefix) {
			continue
		}
		if len(rule.Methods) == 0 {
			return true
		}
		for _, m := range rule.Methods {
			if strings.EqualFold(m, method) {
				return true
			}
		}
	}
	return false
}
