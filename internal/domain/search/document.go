package search

import (
	"time"

	"hotel-booking/internal/domain/booking"
)

const (
	TagGroup      = "group"
	TagMultiRoom  = "multi-room"
	TagLongStay   = "long-stay"
	TagCancelled  = "cancelled"
	TagActiveStay = "active-stay"
)

// HotelInfo is the hotel data denormalized onto every document.
type HotelInfo struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Document is the read-optimized projection of a reservation stored in the search index.
type Document struct {
	ID                 int64          `json:"id"`
	UserID             int64          `json:"userId"`
	HotelID            int64          `json:"hotelId"`
	HotelName          string         `json:"hotelName,omitempty"`
	HotelCity          string         `json:"hotelCity,omitempty"`
	HotelCountry       string         `json:"hotelCountry,omitempty"`
	CheckInDate        time.Time      `json:"checkInDate"`
	CheckOutDate       time.Time      `json:"checkOutDate"`
	RoomType           string         `json:"roomType,omitempty"`
	NumberOfRooms      int            `json:"numberOfRooms"`
	NumberOfGuests     int            `json:"numberOfGuests"`
	BaseCents          int64          `json:"baseCents"`
	TaxesCents         int64          `json:"taxesCents"`
	FeesCents          int64          `json:"feesCents"`
	DiscountCents      int64          `json:"discountCents"`
	TotalCents         int64          `json:"totalCents"`
	Status             booking.Status `json:"status"`
	BookingReference   string         `json:"bookingReference"`
	ConfirmationNumber string         `json:"confirmationNumber"`
	SpecialRequests    string         `json:"specialRequests,omitempty"`
	GuestName          string         `json:"guestName,omitempty"`
	GuestEmail         string         `json:"guestEmail,omitempty"`
	GuestPhone         string         `json:"guestPhone,omitempty"`
	PaymentStatus      string         `json:"paymentStatus,omitempty"`
	PaymentMethod      string         `json:"paymentMethod,omitempty"`
	CancelledAt        *time.Time     `json:"cancelledAt,omitempty"`
	CheckedInAt        *time.Time     `json:"checkedInAt,omitempty"`
	CheckedOutAt       *time.Time     `json:"checkedOutAt,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	Version            int64          `json:"version"`

	// Derived
	StayDuration   *int     `json:"stayDuration"`
	IsActive       bool     `json:"isActive"`
	IsUpcoming     bool     `json:"isUpcoming"`
	IsPast         bool     `json:"isPast"`
	Tags           []string `json:"tags"`
	SearchableText string   `json:"searchableText"`
}

func (d Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
