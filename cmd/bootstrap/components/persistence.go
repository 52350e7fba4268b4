package components

import (
	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/infra/repository"
	"hotel-booking/internal/infra/searchstore"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	primaryStoreModule,
	secondaryStoreModule,
)

var primaryStoreModule = fx.Module("persistence/postgres",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		NewDBTX,
		// Hotels
		fx.Annotate(
			repository.NewHotelDirectory,
			fx.As(new(shared.HotelDirectory)),
		),
	),
)

var secondaryStoreModule = fx.Module("persistence/redis",
	fx.Provide(
		// Search index
		fx.Annotate(
			NewSearchIndex,
			fx.As(new(shared.SearchIndex)),
		),
		// Read cache
		fx.Annotate(
			NewCache,
			fx.As(new(shared.Cache)),
		),
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config, logger zerolog.Logger) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, uow.RetryPolicyFrom(cfg.DB), logger)
}

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}

func NewSearchIndex(rdb redis.UniversalClient, cfg config.Config, logger zerolog.Logger) *searchstore.RedisIndex {
	return searchstore.NewRedisIndex(rdb, cfg.Redis.KeyPrefix, logger)
}

func NewCache(rdb redis.UniversalClient, cfg config.Config) *cache.RedisCache {
	return cache.NewRedisCache(rdb, cfg.Redis.KeyPrefix)
}
