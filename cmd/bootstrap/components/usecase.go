package components

import (
	"github.com/Weed1801/Mystic-Tarot/internal/pkg/clock"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/commands"
	"github.com/Weed1801/Mystic-Tarot/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReadingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCardQueries,
		queries.NewReadingQueries,
	),
)
