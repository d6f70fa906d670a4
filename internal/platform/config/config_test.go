package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CRM_BASE_URL", "https://crm.example.com")
	t.Setenv("CRM_API_TOKEN", "tok-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServiceName != "crmgate" {
		t.Fatalf("expected default service name, got %q", cfg.ServiceName)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port, got %q", cfg.HTTPPort)
	}
	if cfg.HTTPClientTimeout != 30*time.Second {
		t.Fatalf("expected default timeout, got %s", cfg.HTTPClientTimeout)
	}
	if cfg.ProxyAllowAll {
		t.Fatalf("proxy must not default to allow-all")
	}
}

func TestLoadRequiresBaseURL(t *testing.T) {
	t.Setenv("CRM_BASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing base url")
	}
}

func TestLoadRejectsRelativeBaseURL(t *testing.T) {
	t.Setenv("CRM_BASE_URL", "crm.example.com/api")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-absolute base url")
	}
}

func TestLoadToleratesEmptyToken(t *testing.T) {
	t.Setenv("CRM_BASE_URL", "https://crm.example.com")
	t.Setenv("CRM_API_TOKEN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.CRMAPIToken != "" {
		t.Fatalf("expected empty token, got %q", cfg.CRMAPIToken)
	}
}
