package passthroughservice

import (
	"log/slog"

	httpadapter "crmgate/contexts/integration/passthrough-service/adapters/http"
	"crmgate/contexts/integration/passthrough-service/application"
	"crmgate/contexts/integration/passthrough-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Backend  ports.Backend
	Rules    []ports.Rule
	AllowAll bool
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Backend:  deps.Backend,
		Rules:    deps.Rules,
		AllowAll: deps.AllowAll,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}
