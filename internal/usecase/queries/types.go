package queries

import (
	"time"

	"hotel-booking/internal/domain/booking"
)

// BookingView is the read model served and cached for a single booking
type BookingView struct {
	ID                 int64          `json:"id"`
	Reference          string         `json:"reference"`
	ConfirmationNumber string         `json:"confirmationNumber"`
	UserID             int64          `json:"userId"`
	HotelID            int64          `json:"hotelId"`
	CheckIn            time.Time      `json:"checkIn"`
	CheckOut           time.Time      `json:"checkOut"`
	Nights             int            `json:"nights"`
	RoomType           string         `json:"roomType,omitempty"`
	Rooms              int            `json:"rooms"`
	Guests             int            `json:"guests"`
	BaseCents          int64          `json:"baseCents"`
	TaxesCents         int64          `json:"taxesCents"`
	FeesCents          int64          `json:"feesCents"`
	DiscountCents      int64          `json:"discountCents"`
	TotalCents         int64          `json:"totalCents"`
	Status             booking.Status `json:"status"`
	PaymentStatus      string         `json:"paymentStatus"`
	PaymentMethod      string         `json:"paymentMethod,omitempty"`
	GuestName          string         `json:"guestName"`
	GuestEmail         string         `json:"guestEmail,omitempty"`
	GuestPhone         string         `json:"guestPhone,omitempty"`
	SpecialRequests    string         `json:"specialRequests,omitempty"`
	CancelledAt        *time.Time     `json:"cancelledAt,omitempty"`
	CancelledBy        string         `json:"cancelledBy,omitempty"`
	CancellationReason string         `json:"cancellationReason,omitempty"`
	CheckedInAt        *time.Time     `json:"checkedInAt,omitempty"`
	CheckedOutAt       *time.Time     `json:"checkedOutAt,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	CreatedBy          string         `json:"createdBy"`
	UpdatedBy          string         `json:"updatedBy"`
	Version            int64          `json:"version"`
}

// RefundView quotes what a cancelled booking would refund today
type RefundView struct {
	BookingID   int64          `json:"bookingId"`
	Reference   string         `json:"reference"`
	Status      booking.Status `json:"status"`
	TotalCents  int64          `json:"totalCents"`
	RefundCents int64          `json:"refundCents"`
}
