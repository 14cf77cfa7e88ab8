package components

import (
	"vps-rental/internal/pkg/clock"
	"vps-rental/internal/usecase/commands"
	"vps-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,

		commands.NewOfferingCommands,
		commands.NewOrderCommands,
		commands.NewDraftCommands,
		commands.NewAuthCommands,

		queries.NewOfferingQueries,
		queries.NewOrderQueries,
		queries.NewUserQueries,
	),
)
