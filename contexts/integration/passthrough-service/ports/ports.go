package ports

import (
	"context"

	"crmgate/internal/shared/envelope"
)

type Backend interface {
	Call(ctx context.Context, req envelope.Request) envelope.Result
}

// Rule permits forwarding to backend paths under Prefix using the listed
// methods. An empty Methods list permits any method.
type Rule struct {
	Prefix  string   `yaml:"prefix"`
	Methods []string `yaml:"methods"`
}

// ForwardInput is the opaque-JSON pass-through variant: the payload is never
// inspected, only forwarded.
type ForwardInput struct {
	Endpoint string
	Method   string
	Payload  any
}
