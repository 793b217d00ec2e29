package components

import (
	"log/slog"

	"hotel-board/internal/infra/cache"
	"hotel-board/internal/infra/db"
	"hotel-board/internal/infra/repository"
	"hotel-board/internal/infra/uow"
	"hotel-board/internal/pkg/config"
	"hotel-board/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewHouseRepository,
			fx.As(new(shared.HouseRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(shared.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewPriceRepository,
			fx.As(new(shared.PriceRepository)),
		),
		fx.Annotate(
			repository.NewDiscountRepository,
			fx.As(new(shared.DiscountRepository)),
		),
		fx.Annotate(
			repository.NewChangelogRepository,
			fx.As(new(shared.ChangelogRepository)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			cache.NewOccupancyRepository,
			fx.As(new(shared.OccupancyRepository)),
		),
		fx.Annotate(
			NewReservationCache,
			fx.As(new(shared.ReservationCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewReservationCache(client redis.Cmdable, cfg config.Config, logger *slog.Logger) *cache.ReservationCache {
	return cache.NewReservationCache(client, cfg.Board.CalendarCacheTTL, logger)
}
