package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pagination"
	"hotel-booking/internal/usecase/shared"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog"
)

const MaxListPageSize = 50

var ErrBookingNotFound = shared.ErrNotFound

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	GetByReference(ctx context.Context, reference string) (*BookingView, error)
	ListByUser(ctx context.Context, userID int64) ([]*BookingView, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]*BookingView, error)
	List(ctx context.Context, page, size int) (pagination.Page[*BookingView], error)
	RefundQuote(ctx context.Context, id int64) (*RefundView, error)
}

type bookingQueriesImpl struct {
	uow    shared.UnitOfWork
	cache  shared.Cache
	ttl    time.Duration
	clock  clock.Clock
	logger zerolog.Logger
}

func NewBookingQueries(uow shared.UnitOfWork, cache shared.Cache, ttl time.Duration, clk clock.Clock, logger zerolog.Logger) BookingQueries {
	return &bookingQueriesImpl{
		uow:    uow,
		cache:  cache,
		ttl:    ttl,
		clock:  clk,
		logger: logger.With().Str("component", "booking_queries").Logger(),
	}
}

// Cache keys
func bookingIDKey(id int64) string          { return fmt.Sprintf("booking:id:%d", id) }
func bookingRefKey(reference string) string { return "booking:ref:" + reference }
func userBookingsKey(userID int64) string   { return fmt.Sprintf("bookings:user:%d", userID) }

// BookingCacheKeys lists every cache entry that may hold r.
func BookingCacheKeys(r *booking.Reservation) []string {
	return []string{bookingIDKey(r.ID()), bookingRefKey(r.Reference()), userBookingsKey(r.UserID())}
}

func ToView(r *booking.Reservation) (*BookingView, error) {
	snap := r.Snapshot()
	view := &BookingView{}
	if err := copier.Copy(view, &snap); err != nil {
		return nil, errs.Wrap(err, "copy booking view")
	}
	view.Nights = r.Stay().Nights()
	return view, nil
}

func toViews(rs []*booking.Reservation) ([]*BookingView, error) {
	views := make([]*BookingView, 0, len(rs))
	for _, r := range rs {
		v, err := ToView(r)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	return cached(ctx, q, bookingIDKey(id), func() (*BookingView, error) {
		r, err := q.uow.Bookings().FindByID(ctx, id)
		if err != nil {
			return nil, translateRead(err)
		}
		return ToView(r)
	}, viewStamp)
}

func (q *bookingQueriesImpl) GetByReference(ctx context.Context, reference string) (*BookingView, error) {
	return cached(ctx, q, bookingRefKey(reference), func() (*BookingView, error) {
		r, err := q.uow.Bookings().FindByReference(ctx, reference)
		if err != nil {
			return nil, translateRead(err)
		}
		return ToView(r)
	}, viewStamp)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID int64) ([]*BookingView, error) {
	return cached(ctx, q, userBookingsKey(userID), func() ([]*BookingView, error) {
		rs, err := q.uow.Bookings().FindByUser(ctx, userID)
		if err != nil {
			return nil, translateRead(err)
		}
		return toViews(rs)
	}, viewsStamp)
}

func (q *bookingQueriesImpl) ListByHotel(ctx context.Context, hotelID int64) ([]*BookingView, error) {
	rs, err := q.uow.Bookings().FindByHotel(ctx, hotelID)
	if err != nil {
		return nil, translateRead(err)
	}
	return toViews(rs)
}

func (q *bookingQueriesImpl) List(ctx context.Context, page, size int) (pagination.Page[*BookingView], error) {
	var out pagination.Page[*BookingView]
	if page < 0 {
		return out, &booking.ValidationError{Field: "page", Message: "page number cannot be negative"}
	}
	if size < 1 || size > MaxListPageSize {
		return out, &booking.ValidationError{Field: "size", Message: fmt.Sprintf("page size must be between 1 and %d", MaxListPageSize)}
	}

	req := pagination.Request{Number: page, Size: size}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.BookingReader) error {
		p, err := reads.FindAll(ctx, req)
		if err != nil {
			return err
		}
		views, err := toViews(p.Items)
		if err != nil {
			return err
		}
		out = pagination.Page[*BookingView]{
			Items:      views,
			Number:     p.Number,
			Size:       p.Size,
			TotalItems: p.TotalItems,
			HasNext:    p.HasNext,
		}
		return nil
	})
	if err != nil {
		return pagination.Page[*BookingView]{}, translateRead(err)
	}
	return out, nil
}

func (q *bookingQueriesImpl) RefundQuote(ctx context.Context, id int64) (*RefundView, error) {
	r, err := q.uow.Bookings().FindByID(ctx, id)
	if err != nil {
		return nil, translateRead(err)
	}
	return &RefundView{
		BookingID:   r.ID(),
		Reference:   r.Reference(),
		Status:      r.Status(),
		TotalCents:  r.Price().Total.Cents(),
		RefundCents: r.RefundAmount(q.clock.Now()).Cents(),
	}, nil
}

// cached is cache-aside over load. Cache failures degrade to a miss.
// A write that lands between load and Set is caught by reloading once the entry is
// stored: when the stamp moved, the entry is dropped so it cannot outlive the write.
func cached[T any](ctx context.Context, q *bookingQueriesImpl, key string, load func() (T, error), stamp func(T) string) (T, error) {
	var hit T
	ok, err := q.cache.Get(ctx, key, &hit)
	if err != nil {
		q.logger.Debug().Err(err).Str("key", key).Msg("cache read failed")
	} else if ok {
		return hit, nil
	}

	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	if err := q.cache.Set(ctx, key, v, q.ttl); err != nil {
		q.logger.Debug().Err(err).Str("key", key).Msg("cache write failed")
		return v, nil
	}

	fresh, err := load()
	if err == nil && stamp(fresh) == stamp(v) {
		return v, nil
	}
	if err := q.cache.Del(ctx, key); err != nil {
		q.logger.Warn().Err(err).Str("key", key).Msg("failed to drop stale cache entry")
	}
	if err != nil {
		return v, nil
	}
	return fresh, nil
}

func viewStamp(v *BookingView) string {
	return fmt.Sprintf("%d@%d", v.ID, v.Version)
}

func viewsStamp(vs []*BookingView) string {
	var b strings.Builder
	for _, v := range vs {
		b.WriteString(viewStamp(v))
		b.WriteByte(',')
	}
	return b.String()
}

func translateRead(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrBookingNotFound
	}
	if infra.IsKind(err, infra.KindDBFailure) {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return err
}
