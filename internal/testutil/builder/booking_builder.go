//go:build unit || integration

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
)

// FixedNow is the reference instant used across unit tests.
var FixedNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func Today() time.Time {
	return booking.DateOf(FixedNow)
}

func Day(offset int) time.Time {
	return Today().AddDate(0, 0, offset)
}

func NewServices(c clock.Clock) *booking.Services {
	return &booking.Services{
		Clock:           c,
		PriceCalculator: booking.NewDefaultPriceCalculator(),
	}
}

type BookingBuilder struct {
	ID              int64
	Reference       string
	Confirmation    string
	UserID          int64
	HotelID         int64
	CheckIn         time.Time
	CheckOut        time.Time
	RoomType        string
	Rooms           int
	Guests          int
	DiscountCents   int64
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests string
	Status          booking.Status
	Actor           string
	Version         int64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Reference:    "HRS_20250310093000_0001",
		Confirmation: "CONF20250310000001",
		UserID:       1,
		HotelID:      100,
		CheckIn:      Day(1),
		CheckOut:     Day(3),
		RoomType:     "DELUXE",
		Rooms:        1,
		Guests:       2,
		GuestName:    "Alice Martin",
		GuestEmail:   "alice@example.com",
		GuestPhone:   "+33 1 23 45 67 89",
		Status:       booking.StatusConfirmed,
		Actor:        "tester",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStay(checkInOffset, nights int) *BookingBuilder {
	b.CheckIn = Day(checkInOffset)
	b.CheckOut = Day(checkInOffset + nights)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithOwner(userID, hotelID int64) *BookingBuilder {
	b.UserID = userID
	b.HotelID = hotelID
	return b
}

func (b *BookingBuilder) Identifiers() booking.Identifiers {
	return booking.Identifiers{Reference: b.Reference, ConfirmationNumber: b.Confirmation}
}

// Build methods
func (b *BookingBuilder) BuildParams() booking.NewReservationParams {
	return booking.NewReservationParams{
		UserID:        b.UserID,
		HotelID:       b.HotelID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		RoomType:      b.RoomType,
		Rooms:         b.Rooms,
		Guests:        b.Guests,
		DiscountCents: b.DiscountCents,
		Guest: booking.GuestContact{
			Name:  b.GuestName,
			Email: b.GuestEmail,
			Phone: b.GuestPhone,
		},
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Reservation, error) {
	return booking.NewReservation(NewServices(clock.NewMockClock(FixedNow)), b.BuildParams(), b.Identifiers(), b.Actor)
}

// BuildSnapshot skips validation so tests can place a booking in any state or date range.
func (b *BookingBuilder) BuildSnapshot() booking.Snapshot {
	nights := booking.NightsBetween(b.CheckIn, b.CheckOut)
	price := booking.NewDefaultPriceCalculator().Calculate(nights, b.Rooms, booking.MoneyFromCents(b.DiscountCents))
	guestName := b.GuestName
	if guestName == "" {
		guestName = booking.DefaultGuestName(b.UserID)
	}
	return booking.Snapshot{
		ID:                 b.ID,
		Reference:          b.Reference,
		ConfirmationNumber: b.Confirmation,
		UserID:             b.UserID,
		HotelID:            b.HotelID,
		CheckIn:            booking.DateOf(b.CheckIn),
		CheckOut:           booking.DateOf(b.CheckOut),
		RoomType:           b.RoomType,
		Rooms:              b.Rooms,
		Guests:             b.Guests,
		BaseCents:          price.Base.Cents(),
		TaxesCents:         price.Taxes.Cents(),
		FeesCents:          price.Fees.Cents(),
		TotalCents:         price.Total.Cents(),
		DiscountCents:      price.Discount.Cents(),
		Status:             b.Status,
		PaymentStatus:      booking.PaymentStatusPending,
		GuestName:          guestName,
		GuestEmail:         b.GuestEmail,
		GuestPhone:         b.GuestPhone,
		SpecialRequests:    b.SpecialRequests,
		CreatedAt:          FixedNow,
		UpdatedAt:          FixedNow,
		CreatedBy:          b.Actor,
		UpdatedBy:          b.Actor,
		Version:            b.Version,
	}
}

func (b *BookingBuilder) BuildReconstructed() *booking.Reservation {
	return booking.Reconstruct(b.BuildSnapshot())
}
