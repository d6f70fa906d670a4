package rulesfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"crmgate/contexts/integration/passthrough-service/ports"
)

type document struct {
	Rules []ports.Rule `yaml:"rules"`
}

// Load reads the forwarding allow-list from a YAML file:
//
//	rules:
//	  - prefix: /api/v1/customers
//	    methods: [GET, POST]
func Load(path string) ([]ports.Rule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read proxy rules: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse proxy rules: %w", err)
	}
	for i, rule := range doc.Rules {
		if rule.Prefix == "" {
			return nil, fmt.Errorf("parse proxy rules: rule %d has no prefix", i)
		}
	}
	return doc.Rules, nil
}
