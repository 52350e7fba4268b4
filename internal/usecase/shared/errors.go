package shared

import "hotel-booking/internal/pkg/errs"

var (
	ErrNotFound               = errs.ErrBookingNotFound
	ErrConcurrentModification = errs.ErrConcurrentModification
)
