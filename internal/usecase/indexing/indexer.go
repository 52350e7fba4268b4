package indexing

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/observability"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/rs/zerolog"
)

// Reindexer refreshes or drops single documents on demand.
type Reindexer interface {
	Reindex(ctx context.Context, id int64) error
	Remove(ctx context.Context, id int64) error
}

var _ Reindexer = (*Indexer)(nil)

// Indexer keeps single search documents in step with committed bookings.
type Indexer struct {
	reads  shared.BookingReader
	index  shared.SearchIndex
	hotels shared.HotelDirectory
	clock  clock.Clock
	logger zerolog.Logger
}

func NewIndexer(uow shared.UnitOfWork, index shared.SearchIndex, hotels shared.HotelDirectory, clk clock.Clock, logger zerolog.Logger) *Indexer {
	return &Indexer{
		reads:  uow.Bookings(),
		index:  index,
		hotels: hotels,
		clock:  clk,
		logger: logger.With().Str("component", "indexer").Logger(),
	}
}

func (ix *Indexer) Index(ctx context.Context, r *booking.Reservation) (err error) {
	defer func() { observability.ObserveIndex("save", err) }()

	hotels, err := ix.hotels.Lookup(ctx, []int64{r.HotelID()})
	if err != nil {
		return errs.Wrap(err, "lookup hotel")
	}
	doc := search.Map(r, hotels[r.HotelID()], ix.clock.Now())
	if err := ix.index.Save(ctx, doc); err != nil {
		return errs.Wrapf(err, "index booking %d", r.ID())
	}
	ix.logger.Debug().Int64("booking_id", r.ID()).Str("reference", r.Reference()).Msg("booking indexed")
	return nil
}

// Reindex reloads a booking from the primary store; a missing booking is logged and skipped.
func (ix *Indexer) Reindex(ctx context.Context, id int64) error {
	r, err := ix.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			ix.logger.Warn().Int64("booking_id", id).Msg("cannot reindex non-existent booking")
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ix.Index(ctx, r)
}

func (ix *Indexer) Remove(ctx context.Context, id int64) (err error) {
	defer func() { observability.ObserveIndex("delete", err) }()

	if err := ix.index.DeleteByID(ctx, id); err != nil {
		return errs.Wrapf(err, "remove booking %d from index", id)
	}
	ix.logger.Debug().Int64("booking_id", id).Msg("booking removed from index")
	return nil
}
