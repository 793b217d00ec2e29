package components

import (
	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/clock"
	"hotel-board/internal/pkg/config"
	"hotel-board/internal/usecase"
	"hotel-board/internal/usecase/commands"
	"hotel-board/internal/usecase/queries"
	"hotel-board/internal/usecase/tasks"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseTasksModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
	func(cfg config.Config) config.BoardConfig {
		return cfg.Board
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewCalendarUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPriceQueries,
		queries.NewCalendarQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseTasksModule = fx.Module("usecase/tasks",
	fx.Provide(
		tasks.NewRunner,
		func(r *tasks.Runner) tasks.Tasks {
			return r
		},
	),
)
