package queries

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pagination"
	"hotel-booking/internal/usecase/shared"

	"github.com/rs/zerolog"
)

const defaultTopDestinations = 10

var ErrSearchDocumentNotFound = errs.ErrSearchDocumentNotFound

type SearchQueries interface {
	SearchBookings(ctx context.Context, text string, page pagination.Request) (pagination.Page[search.Document], error)
	FindByReference(ctx context.Context, reference string) (*search.Document, error)
	SearchUserBookings(ctx context.Context, userID int64, criteria search.Criteria, page pagination.Request) (pagination.Page[search.Document], error)
	UpcomingHotelBookings(ctx context.Context, hotelID int64, page pagination.Request) (pagination.Page[search.Document], error)
	RecentBookings(ctx context.Context, since time.Time, page pagination.Request) (pagination.Page[search.Document], error)
	OverlappingBookings(ctx context.Context, hotelID int64, checkIn, checkOut time.Time) ([]search.Document, error)
	StatusHistogram(ctx context.Context, start, end time.Time) (map[booking.Status]int64, error)
	TopDestinations(ctx context.Context, limit int) ([]search.CityCount, error)
}

type searchQueriesImpl struct {
	index  shared.SearchIndex
	clock  clock.Clock
	logger zerolog.Logger
}

func NewSearchQueries(index shared.SearchIndex, clk clock.Clock, logger zerolog.Logger) SearchQueries {
	return &searchQueriesImpl{
		index:  index,
		clock:  clk,
		logger: logger.With().Str("component", "search_queries").Logger(),
	}
}

func (q *searchQueriesImpl) SearchBookings(ctx context.Context, text string, page pagination.Request) (pagination.Page[search.Document], error) {
	res, err := q.index.FullTextSearch(ctx, text, page.Normalize())
	if err != nil {
		return pagination.Page[search.Document]{}, q.translate(err, "full text search")
	}
	return res, nil
}

// FindByReference matches the booking reference first, then the confirmation number.
func (q *searchQueriesImpl) FindByReference(ctx context.Context, reference string) (*search.Document, error) {
	doc, err := q.index.FindByReference(ctx, reference)
	if err == nil {
		return doc, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, q.translate(err, "find by reference")
	}

	doc, err = q.index.FindByConfirmationNumber(ctx, reference)
	if err != nil {
		return nil, q.translate(err, "find by confirmation number")
	}
	return doc, nil
}

func (q *searchQueriesImpl) SearchUserBookings(ctx context.Context, userID int64, criteria search.Criteria, page pagination.Request) (pagination.Page[search.Document], error) {
	criteria.UserID = &userID
	return q.search(ctx, criteria, page)
}

// UpcomingHotelBookings filters on check-in date rather than the stored
// isUpcoming flag, which is only as fresh as the last sync.
func (q *searchQueriesImpl) UpcomingHotelBookings(ctx context.Context, hotelID int64, page pagination.Request) (pagination.Page[search.Document], error) {
	tomorrow := clock.Today(q.clock).AddDate(0, 0, 1)
	return q.search(ctx, search.Criteria{
		HotelID:     &hotelID,
		CheckInFrom: &tomorrow,
		Statuses:    []booking.Status{booking.StatusPending, booking.StatusConfirmed},
		Order:       search.OrderCheckInAsc,
	}, page)
}

func (q *searchQueriesImpl) RecentBookings(ctx context.Context, since time.Time, page pagination.Request) (pagination.Page[search.Document], error) {
	return q.search(ctx, search.Criteria{
		CreatedAfter: &since,
		Order:        search.OrderCreatedDesc,
	}, page)
}

func (q *searchQueriesImpl) OverlappingBookings(ctx context.Context, hotelID int64, checkIn, checkOut time.Time) ([]search.Document, error) {
	window, err := booking.NewStayWindow(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	docs, err := q.index.Scan(ctx, search.Criteria{
		HotelID:     &hotelID,
		Overlapping: &search.DateRange{From: window.CheckIn(), To: window.CheckOut()},
		Order:       search.OrderCheckInAsc,
	})
	if err != nil {
		return nil, q.translate(err, "scan overlapping")
	}
	return docs, nil
}

func (q *searchQueriesImpl) StatusHistogram(ctx context.Context, start, end time.Time) (map[booking.Status]int64, error) {
	if start.IsZero() || end.IsZero() {
		return nil, &booking.ValidationError{Field: "range", Message: "start and end are required"}
	}
	if end.Before(start) {
		return nil, &booking.ValidationError{Field: "range", Message: "end must not be before start"}
	}
	docs, err := q.index.Scan(ctx, search.Criteria{})
	if err != nil {
		return nil, q.translate(err, "scan for histogram")
	}
	return search.StatusHistogram(docs, start, end), nil
}

func (q *searchQueriesImpl) TopDestinations(ctx context.Context, limit int) ([]search.CityCount, error) {
	if limit <= 0 {
		limit = defaultTopDestinations
	}
	docs, err := q.index.Scan(ctx, search.Criteria{})
	if err != nil {
		return nil, q.translate(err, "scan for destinations")
	}
	return search.TopDestinations(docs, limit), nil
}

func (q *searchQueriesImpl) search(ctx context.Context, criteria search.Criteria, page pagination.Request) (pagination.Page[search.Document], error) {
	if criteria.Today.IsZero() {
		criteria.Today = clock.Today(q.clock)
	}
	res, err := q.index.Search(ctx, criteria, page.Normalize())
	if err != nil {
		return pagination.Page[search.Document]{}, q.translate(err, "search")
	}
	return res, nil
}

func (q *searchQueriesImpl) translate(err error, op string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrSearchDocumentNotFound
	}
	q.logger.Error().Err(err).Str("op", op).Msg("search index query failed")
	return errs.Mark(errs.Wrap(err, op), errs.ErrSearchOperationFailed)
}
