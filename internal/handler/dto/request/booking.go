package request

import (
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/commands"
)

const DateLayout = "2006-01-02"

type CreateBookingRequest struct {
	UserID          int64  `json:"userId" binding:"required,gt=0"`
	HotelID         int64  `json:"hotelId" binding:"required,gt=0"`
	CheckIn         string `json:"checkIn" binding:"required"`
	CheckOut        string `json:"checkOut" binding:"required"`
	RoomType        string `json:"roomType,omitempty" binding:"max=50"`
	Rooms           int    `json:"rooms" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	DiscountCents   int64  `json:"discountCents,omitempty" binding:"gte=0"`
	GuestName       string `json:"guestName,omitempty" binding:"max=100"`
	GuestEmail      string `json:"guestEmail,omitempty" binding:"omitempty,email"`
	GuestPhone      string `json:"guestPhone,omitempty" binding:"max=20"`
	SpecialRequests string `json:"specialRequests,omitempty" binding:"max=1000"`
	PaymentMethod   string `json:"paymentMethod,omitempty" binding:"max=50"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	checkIn, err := ParseDate("checkIn", r.CheckIn)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	checkOut, err := ParseDate("checkOut", r.CheckOut)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		UserID:          r.UserID,
		HotelID:         r.HotelID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		RoomType:        strings.TrimSpace(r.RoomType),
		Rooms:           r.Rooms,
		Guests:          r.Guests,
		DiscountCents:   r.DiscountCents,
		GuestName:       strings.TrimSpace(r.GuestName),
		GuestEmail:      strings.TrimSpace(r.GuestEmail),
		GuestPhone:      strings.TrimSpace(r.GuestPhone),
		SpecialRequests: r.SpecialRequests,
		PaymentMethod:   strings.TrimSpace(r.PaymentMethod),
	}, nil
}

// UpdateBookingRequest is a partial update; absent fields keep their value.
type UpdateBookingRequest struct {
	CheckIn         *string `json:"checkIn,omitempty"`
	CheckOut        *string `json:"checkOut,omitempty"`
	RoomType        *string `json:"roomType,omitempty" binding:"omitempty,max=50"`
	Rooms           *int    `json:"rooms,omitempty"`
	Guests          *int    `json:"guests,omitempty"`
	DiscountCents   *int64  `json:"discountCents,omitempty" binding:"omitempty,gte=0"`
	GuestName       *string `json:"guestName,omitempty" binding:"omitempty,max=100"`
	GuestEmail      *string `json:"guestEmail,omitempty" binding:"omitempty,email"`
	GuestPhone      *string `json:"guestPhone,omitempty" binding:"omitempty,max=20"`
	SpecialRequests *string `json:"specialRequests,omitempty" binding:"omitempty,max=1000"`
	PaymentStatus   *string `json:"paymentStatus,omitempty" binding:"omitempty,max=20"`
	PaymentMethod   *string `json:"paymentMethod,omitempty" binding:"omitempty,max=50"`
}

func (r UpdateBookingRequest) ToPatch() (booking.Patch, error) {
	p := booking.Patch{
		RoomType:        r.RoomType,
		Rooms:           r.Rooms,
		Guests:          r.Guests,
		DiscountCents:   r.DiscountCents,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		SpecialRequests: r.SpecialRequests,
		PaymentStatus:   r.PaymentStatus,
		PaymentMethod:   r.PaymentMethod,
	}
	if r.CheckIn != nil {
		d, err := ParseDate("checkIn", *r.CheckIn)
		if err != nil {
			return booking.Patch{}, err
		}
		p.CheckIn = &d
	}
	if r.CheckOut != nil {
		d, err := ParseDate("checkOut", *r.CheckOut)
		if err != nil {
			return booking.Patch{}, err
		}
		p.CheckOut = &d
	}
	return p, nil
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty" binding:"max=500"`
}

// ParseDate reads a calendar date. Failures are reported as validation errors on field.
func ParseDate(field, value string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, &booking.ValidationError{Field: field, Message: "must be a date formatted as YYYY-MM-DD"}
	}
	return d, nil
}
