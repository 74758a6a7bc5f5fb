package components

import (
	"crm-service/internal/pkg/clock"
	"crm-service/internal/pkg/config"
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.RestockPolicy {
		return commands.RestockPolicy{
			Threshold: cfg.Jobs.RestockThreshold,
			Increment: cfg.Jobs.RestockIncrement,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCustomerCommands,
		commands.NewProductCommands,
		commands.NewOrderCommands,
		commands.NewRestockCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCustomerQueries,
		queries.NewProductQueries,
		queries.NewOrderQueries,
		queries.NewSystemQueries,
	),
)
