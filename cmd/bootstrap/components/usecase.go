package components

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/indexing"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseIndexingModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	func(clock clock.Clock, calc booking.PriceCalculator) *booking.Services {
		return &booking.Services{
			Clock:           clock,
			PriceCalculator: calc,
		}
	},
	fx.Annotate(
		NewIdentifierGenerator,
		fx.As(new(booking.IdentifierGenerator)),
	),
)

var usecaseIndexingModule = fx.Module("usecase/indexing",
	fx.Provide(
		fx.Annotate(
			indexing.NewIndexer,
			fx.As(new(commands.SearchIndexer)),
			fx.As(new(indexing.Reindexer)),
		),
		NewSynchronizer,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewBookingQueries,
		queries.NewSearchQueries,
	),
)

func NewPriceCalculator(cfg config.Config) *booking.DefaultPriceCalculator {
	return booking.NewPriceCalculator(cfg.Booking.RatePerNightCents, cfg.Booking.TaxRateBps, cfg.Booking.ServiceFeeBps)
}

func NewIdentifierGenerator(cfg config.Config) (*booking.RandomIdentifierGenerator, error) {
	return booking.NewIdentifierGenerator(cfg.Booking.ReferencePrefix)
}

func NewSynchronizer(
	uow shared.UnitOfWork,
	index shared.SearchIndex,
	hotels shared.HotelDirectory,
	clk clock.Clock,
	logger zerolog.Logger,
	cfg config.Config,
) *indexing.Synchronizer {
	return indexing.NewSynchronizer(uow, index, hotels, clk, logger, indexing.SyncOptions{
		BatchSize:      cfg.Sync.BatchSize,
		PagesPerSecond: cfg.Sync.PagesPerSecond,
	})
}

func NewBookingQueries(uow shared.UnitOfWork, cache shared.Cache, clk clock.Clock, logger zerolog.Logger, cfg config.Config) queries.BookingQueries {
	return queries.NewBookingQueries(uow, cache, cfg.Cache.TTL, clk, logger)
}
