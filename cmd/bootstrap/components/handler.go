package components

import (
	"crm-service/internal/handler"
	"crm-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCustomerHandler,
		api.NewProductHandler,
		api.NewOrderHandler,
		api.NewJobHandler,
	),
	fx.Invoke(handler.NewRouter),
)
