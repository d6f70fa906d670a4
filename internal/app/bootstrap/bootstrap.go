package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"strings"

	invoiceservice "crmgate/contexts/billing/invoice-service"
	customerservice "crmgate/contexts/crm-core/customer-service"
	inventoryservice "crmgate/contexts/crm-core/inventory-service"
	orderservice "crmgate/contexts/crm-core/order-service"
	productservice "crmgate/contexts/crm-core/product-service"
	passthroughservice "crmgate/contexts/integration/passthrough-service"
	"crmgate/contexts/integration/passthrough-service/adapters/rulesfile"
	"crmgate/contexts/integration/passthrough-service/ports"
	repairservice "crmgate/contexts/service-desk/repair-service"
	"crmgate/internal/platform/config"
	"crmgate/internal/platform/crm"
	"crmgate/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server *httpserver.Server
	logger *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	base := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(base)
	logger := base.With("service", cfg.ServiceName, "process", "api")

	gateway := crm.NewClient(cfg.CRMBaseURL, cfg.CRMAPIToken, cfg.HTTPClientTimeout, logger)
	if !gateway.HasToken() {
		logger.Warn("no API token configured, backend calls will be unauthenticated",
			"event", "bootstrap_missing_token",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}

	var rules []ports.Rule
	if cfg.ProxyRulesPath != "" {
		rules, err = rulesfile.Load(cfg.ProxyRulesPath)
		if err != nil {
			return nil, err
		}
	}
	if cfg.ProxyAllowAll {
		logger.Warn("proxy allow-list disabled, every backend endpoint is reachable",
			"event", "bootstrap_proxy_allow_all",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}

	modules := httpserver.Modules{
		Customers: customerservice.NewModule(customerservice.Dependencies{
			Backend: gateway,
			Logger:  logger,
		}),
		Products: productservice.NewModule(productservice.Dependencies{
			Backend: gateway,
			Logger:  logger,
		}),
		Orders: orderservice.NewModule(orderservice.Dependencies{
			Backend: gateway,
			Logger:  logger,
		}),
		Inventory: inventoryservice.NewModule(inventoryservice.Dependencies{
			Backend: gateway,
			Logger:  logger,
		}),
		Invoices: invoiceservice.NewModule(invoiceservice.Dependencies{
			Backend: gateway,
			Logger:  logger,
		}),
		Repairs: repairservice.NewModule(repairservice.Dependencies{
			Backend: gateway,
			Logger:  logger,
		}),
		Passthrough: passthroughservice.NewModule(passthroughservice.Dependencies{
			Backend:  gateway,
			Rules:    rules,
			AllowAll: cfg.ProxyAllowAll,
			Logger:   logger,
		}),
	}

	server := httpserver.New(modules, logger, httpserver.Options{
		Addr:           normalizeAddr(cfg.HTTPPort),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})
	return &APIApp{
		server: server,
		logger: logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
