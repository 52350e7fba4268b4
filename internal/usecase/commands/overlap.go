package commands

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

// FindOverlapping returns the non-cancelled bookings of the (user, hotel) scope whose
// stay intersects the window, excluding q.ExcludeID. Store results are re-checked
// against the domain predicate.
func FindOverlapping(ctx context.Context, repo shared.BookingRepository, q shared.OverlapQuery) ([]*booking.Reservation, error) {
	candidates, err := repo.FindOverlapping(ctx, q)
	if err != nil {
		return nil, errs.Wrap(err, "find overlapping bookings")
	}

	out := candidates[:0]
	for _, c := range candidates {
		if c.ID() == q.ExcludeID && q.ExcludeID != 0 {
			continue
		}
		if c.Status() == booking.StatusCancelled {
			continue
		}
		if c.UserID() != q.UserID || c.HotelID() != q.HotelID {
			continue
		}
		if !booking.Overlaps(c.Stay().CheckIn(), c.Stay().CheckOut(), booking.DateOf(q.CheckIn), booking.DateOf(q.CheckOut)) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func ensureNoOverlap(ctx context.Context, repo shared.BookingRepository, r *booking.Reservation) error {
	conflicts, err := FindOverlapping(ctx, repo, shared.OverlapQuery{
		UserID:    r.UserID(),
		HotelID:   r.HotelID(),
		CheckIn:   r.Stay().CheckIn(),
		CheckOut:  r.Stay().CheckOut(),
		ExcludeID: r.ID(),
	})
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &booking.DuplicateBookingError{Reference: conflicts[0].Reference()}
	}
	return nil
}
