package config

import (
	"errors"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"crmgate"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`

	// Backend CRM connection. The token is an opaque per-deployment secret;
	// an empty token is tolerated at startup (calls proceed and fail against
	// the backend) but warned about.
	CRMBaseURL        string        `env:"CRM_BASE_URL"`
	CRMAPIToken       string        `env:"CRM_API_TOKEN"`
	HTTPClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"30s"`

	// Pass-through endpoint policy. With no rules file and AllowAll unset the
	// endpoint denies every call.
	ProxyRulesPath string `env:"PROXY_RULES_PATH"`
	ProxyAllowAll  bool   `env:"PROXY_ALLOW_ALL" envDefault:"false"`

	// Inbound per-client rate limit. RPS <= 0 disables the limiter.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	cfg.CRMBaseURL = strings.TrimSpace(cfg.CRMBaseURL)
	cfg.CRMAPIToken = strings.TrimSpace(cfg.CRMAPIToken)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.CRMBaseURL == "" {
		return errors.New("CRM_BASE_URL is required")
	}
	if !strings.HasPrefix(c.CRMBaseURL, "http://") && !strings.HasPrefix(c.CRMBaseURL, "https://") {
		return errors.New("CRM_BASE_URL must be an absolute http(s) URL")
	}
	if c.HTTPClientTimeout <= 0 {
		return errors.New("HTTP_CLIENT_TIMEOUT must be positive")
	}
	return nil
}
