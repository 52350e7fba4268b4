package booking

import (
	"strings"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/patch"
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type NewReservationParams struct {
	UserID          int64
	HotelID         int64
	CheckIn         time.Time
	CheckOut        time.Time
	RoomType        string
	Rooms           int
	Guests          int
	DiscountCents   int64
	Guest           GuestContact
	SpecialRequests string
	PaymentMethod   string
}

func (p NewReservationParams) Proposal() Proposal {
	return Proposal{
		UserID:   p.UserID,
		HotelID:  p.HotelID,
		CheckIn:  p.CheckIn,
		CheckOut: p.CheckOut,
		Rooms:    p.Rooms,
		Guests:   p.Guests,
	}
}

type Cancellation struct {
	At     time.Time
	By     string
	Reason string
}

type Reservation struct {
	id                 int64
	reference          string
	confirmationNumber string
	userID             int64
	hotelID            int64
	stay               StayWindow
	roomType           string
	occupancy          Occupancy
	price              PriceBreakdown
	status             Status
	paymentStatus      string
	paymentMethod      string
	guest              GuestContact
	specialRequests    string
	cancellation       *Cancellation
	checkedInAt        *time.Time
	checkedOutAt       *time.Time
	createdAt          time.Time
	updatedAt          time.Time
	createdBy          string
	updatedBy          string
	version            int64
}

// NewReservation validates the request, prices the stay and returns a CONFIRMED
// reservation that has not been persisted yet (id and version are zero).
func NewReservation(services *Services, p NewReservationParams, ids Identifiers, actor string) (*Reservation, error) {
	now := services.Clock.Now()
	if err := ValidateProposal(p.Proposal(), now); err != nil {
		return nil, err
	}
	discount, err := NewMoney(p.DiscountCents)
	if err != nil {
		return nil, invalid("discountAmount", "discount cannot be negative")
	}

	stay, err := NewStayWindow(p.CheckIn, p.CheckOut)
	if err != nil {
		return nil, err
	}
	occupancy, err := NewOccupancy(p.Rooms, p.Guests)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		reference:          ids.Reference,
		confirmationNumber: ids.ConfirmationNumber,
		userID:             p.UserID,
		hotelID:            p.HotelID,
		stay:               stay,
		roomType:           strings.TrimSpace(p.RoomType),
		occupancy:          occupancy,
		price:              services.PriceCalculator.Calculate(stay.Nights(), occupancy.Rooms(), discount),
		status:             StatusConfirmed,
		paymentStatus:      PaymentStatusPending,
		paymentMethod:      p.PaymentMethod,
		guest:              p.Guest.withDefaults(p.UserID),
		specialRequests:    p.SpecialRequests,
		createdAt:          now,
		updatedAt:          now,
		createdBy:          actor,
		updatedBy:          actor,
	}, nil
}

// WithIdentifiers swaps the generated codes before the first insert.
func (r *Reservation) WithIdentifiers(ids Identifiers) {
	if r.id != 0 {
		return
	}
	r.reference = ids.Reference
	r.confirmationNumber = ids.ConfirmationNumber
}

// ApplyPatch applies the non-nil fields of p and re-prices when dates, rooms or
// the discount change.
func (r *Reservation) ApplyPatch(services *Services, p Patch, actor string) (PatchResult, error) {
	var result PatchResult
	if !r.status.IsModifiable() {
		return result, ErrNotModifiable
	}
	now := services.Clock.Now()

	stay := r.stay
	in := DateOf(patch.Coalesce(p.CheckIn, r.stay.CheckIn()))
	out := DateOf(patch.Coalesce(p.CheckOut, r.stay.CheckOut()))
	if p.TouchesDates() && (!in.Equal(r.stay.CheckIn()) || !out.Equal(r.stay.CheckOut())) {
		if err := ValidateDates(in, out, now); err != nil {
			return result, err
		}
		var err error
		if stay, err = NewStayWindow(in, out); err != nil {
			return result, err
		}
		result.DatesChanged = true
	}

	occupancy := r.occupancy
	roomsChanged := patch.Changed(p.Rooms, r.occupancy.Rooms())
	if p.Rooms != nil || p.Guests != nil {
		var err error
		occupancy, err = NewOccupancy(patch.Coalesce(p.Rooms, r.occupancy.Rooms()), patch.Coalesce(p.Guests, r.occupancy.Guests()))
		if err != nil {
			return result, err
		}
	}

	discount := r.price.Discount
	discountChanged := patch.Changed(p.DiscountCents, r.price.Discount.Cents())
	if discountChanged {
		var err error
		if discount, err = NewMoney(*p.DiscountCents); err != nil {
			return result, invalid("discountAmount", "discount cannot be negative")
		}
	}

	r.stay = stay
	r.occupancy = occupancy
	r.roomType = patch.Coalesce(p.RoomType, r.roomType)
	r.guest = GuestContact{
		Name:  patch.Coalesce(p.GuestName, r.guest.Name),
		Email: patch.Coalesce(p.GuestEmail, r.guest.Email),
		Phone: patch.Coalesce(p.GuestPhone, r.guest.Phone),
	}.withDefaults(r.userID)
	r.specialRequests = patch.Coalesce(p.SpecialRequests, r.specialRequests)
	r.paymentStatus = patch.Coalesce(p.PaymentStatus, r.paymentStatus)
	r.paymentMethod = patch.Coalesce(p.PaymentMethod, r.paymentMethod)

	if result.DatesChanged || roomsChanged || discountChanged {
		r.price = services.PriceCalculator.Calculate(r.stay.Nights(), r.occupancy.Rooms(), discount)
		result.Repriced = true
	}

	r.touch(now, actor)
	return result, nil
}

func (r *Reservation) Cancel(now time.Time, actor, reason string) error {
	if !r.status.IsModifiable() {
		return ErrNotCancellable
	}
	if strings.TrimSpace(reason) == "" {
		reason = DefaultCancelReason
	}
	r.status = StatusCancelled
	r.cancellation = &Cancellation{At: now, By: actor, Reason: reason}
	r.touch(now, actor)
	return nil
}

func (r *Reservation) CheckIn(now time.Time, actor string) error {
	if r.status != StatusConfirmed {
		return &TransitionError{From: r.status, To: StatusCheckedIn}
	}
	if r.stay.CheckIn().After(DateOf(now)) {
		return ErrTooEarly
	}
	r.status = StatusCheckedIn
	r.checkedInAt = &now
	r.touch(now, actor)
	return nil
}

func (r *Reservation) CheckOut(now time.Time, actor string) error {
	if r.status != StatusCheckedIn {
		return &TransitionError{From: r.status, To: StatusCheckedOut}
	}
	r.status = StatusCheckedOut
	r.checkedOutAt = &now
	r.touch(now, actor)
	return nil
}

// RefundAmount is the full total when a cancelled stay starts more than one day
// after today, half of it when the stay starts today, and zero otherwise.
func (r *Reservation) RefundAmount(now time.Time) Money {
	if r.status != StatusCancelled {
		return Money{}
	}
	today := DateOf(now)
	switch in := r.stay.CheckIn(); {
	case in.After(today.AddDate(0, 0, 1)):
		return r.price.Total
	case in.Equal(today):
		return r.price.Total.MulBasisPoints(5000)
	default:
		return Money{}
	}
}

func (r *Reservation) IsModifiable() bool  { return r.status.IsModifiable() }
func (r *Reservation) IsCancellable() bool { return r.status.IsModifiable() }
func (r *Reservation) IsNew() bool         { return r.id == 0 }

func (r *Reservation) touch(now time.Time, actor string) {
	r.updatedAt = now
	r.updatedBy = actor
}

func (r *Reservation) ID() int64                   { return r.id }
func (r *Reservation) Reference() string           { return r.reference }
func (r *Reservation) ConfirmationNumber() string  { return r.confirmationNumber }
func (r *Reservation) UserID() int64               { return r.userID }
func (r *Reservation) HotelID() int64              { return r.hotelID }
func (r *Reservation) Stay() StayWindow            { return r.stay }
func (r *Reservation) RoomType() string            { return r.roomType }
func (r *Reservation) Occupancy() Occupancy        { return r.occupancy }
func (r *Reservation) Price() PriceBreakdown       { return r.price }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) PaymentStatus() string       { return r.paymentStatus }
func (r *Reservation) PaymentMethod() string       { return r.paymentMethod }
func (r *Reservation) Guest() GuestContact         { return r.guest }
func (r *Reservation) SpecialRequests() string     { return r.specialRequests }
func (r *Reservation) Cancellation() *Cancellation { return r.cancellation }
func (r *Reservation) CheckedInAt() *time.Time     { return r.checkedInAt }
func (r *Reservation) CheckedOutAt() *time.Time    { return r.checkedOutAt }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }
func (r *Reservation) CreatedBy() string           { return r.createdBy }
func (r *Reservation) UpdatedBy() string           { return r.updatedBy }
func (r *Reservation) Version() int64              { return r.version }
