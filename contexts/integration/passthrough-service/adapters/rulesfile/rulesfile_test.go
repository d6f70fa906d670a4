package rulesfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write rules file: %v", err)
	}
	return path
}

func TestLoadParsesRules(t *testing.T) {
	path := writeRules(t, `
rules:
  - prefix: /api/v1/customers
    methods: [GET, POST]
  - prefix: /api/v1/query
`)
	rules, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Prefix != "/api/v1/customers" || len(rules[0].Methods) != 2 {
		t.Fatalf("unexpected first rule: %+v", rules[0])
	}
	if len(rules[1].Methods) != 0 {
		t.Fatalf("expected open methods on second rule: %+v", rules[1])
	}
}

func TestLoadRejectsRuleWithoutPrefix(t *testing.T) {
	path := writeRules(t, `
rules:
  - methods: [GET]
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for prefixless rule")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
