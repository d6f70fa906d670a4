package productservice

import (
	"log/slog"

	httpadapter "crmgate/contexts/crm-core/product-service/adapters/http"
	"crmgate/contexts/crm-core/product-service/application"
	"crmgate/contexts/crm-core/product-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Backend ports.Backend
	Logger  *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Backend: deps.Backend,
		Logger:  deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}
