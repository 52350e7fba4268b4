package shared

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/pagination"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-statement consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads BookingReader) error) error
	// Bookings: Single query reads using implicit transactions
	Bookings() BookingReader
}

type Tx interface {
	Bookings() BookingRepository
}

type BookingReader interface {
	FindByID(ctx context.Context, id int64) (*booking.Reservation, error)
	FindByReference(ctx context.Context, reference string) (*booking.Reservation, error)
	// FindAll orders by id so pages are stable across a batch run.
	FindAll(ctx context.Context, page pagination.Request) (pagination.Page[*booking.Reservation], error)
	Count(ctx context.Context) (int64, error)
	// FindByUser returns newest first.
	FindByUser(ctx context.Context, userID int64) ([]*booking.Reservation, error)
	// FindByHotel returns by check-in date ascending.
	FindByHotel(ctx context.Context, hotelID int64) ([]*booking.Reservation, error)
}

type OverlapQuery struct {
	UserID    int64
	HotelID   int64
	CheckIn   time.Time
	CheckOut  time.Time
	ExcludeID int64 // zero excludes nothing
}

type BookingRepository interface {
	BookingReader
	// LockScope serializes writers of one (user, hotel) pair until the transaction ends.
	LockScope(ctx context.Context, userID, hotelID int64) error
	// FindOverlapping returns non-cancelled bookings of the scope whose stay intersects the window.
	FindOverlapping(ctx context.Context, q OverlapQuery) ([]*booking.Reservation, error)
	ExistsByReference(ctx context.Context, reference string) (bool, error)
	ExistsByConfirmationNumber(ctx context.Context, confirmationNumber string) (bool, error)
	// Save inserts a new reservation or compare-and-swaps an existing one on its version,
	// returning the stored state with id and version assigned.
	Save(ctx context.Context, r *booking.Reservation) (*booking.Reservation, error)
}
