package search

import (
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
)

const longStayNights = 7

// Map projects a reservation into its search document. The result depends only
// on its inputs, so mapping an unchanged reservation twice yields equal documents.
func Map(r *booking.Reservation, hotel HotelInfo, now time.Time) Document {
	s := r.Snapshot()
	today := booking.DateOf(now)

	doc := Document{
		ID:                 s.ID,
		UserID:             s.UserID,
		HotelID:            s.HotelID,
		HotelName:          hotel.Name,
		HotelCity:          hotel.City,
		HotelCountry:       hotel.Country,
		CheckInDate:        s.CheckIn,
		CheckOutDate:       s.CheckOut,
		RoomType:           s.RoomType,
		NumberOfRooms:      s.Rooms,
		NumberOfGuests:     s.Guests,
		BaseCents:          s.BaseCents,
		TaxesCents:         s.TaxesCents,
		FeesCents:          s.FeesCents,
		DiscountCents:      s.DiscountCents,
		TotalCents:         s.TotalCents,
		Status:             s.Status,
		BookingReference:   s.Reference,
		ConfirmationNumber: s.ConfirmationNumber,
		SpecialRequests:    s.SpecialRequests,
		GuestName:          s.GuestName,
		GuestEmail:         s.GuestEmail,
		GuestPhone:         s.GuestPhone,
		PaymentStatus:      s.PaymentStatus,
		PaymentMethod:      s.PaymentMethod,
		CancelledAt:        utcPtr(s.CancelledAt),
		CheckedInAt:        utcPtr(s.CheckedInAt),
		CheckedOutAt:       utcPtr(s.CheckedOutAt),
		CreatedAt:          s.CreatedAt.UTC(),
		UpdatedAt:          s.UpdatedAt.UTC(),
		Version:            s.Version,
		IsActive:           s.Status.IsActive(),
	}

	if !s.CheckIn.IsZero() && !s.CheckOut.IsZero() {
		nights := booking.NightsBetween(s.CheckIn, s.CheckOut)
		doc.StayDuration = &nights
	}
	if !s.CheckIn.IsZero() {
		doc.IsUpcoming = s.CheckIn.After(today)
	}
	if !s.CheckOut.IsZero() {
		doc.IsPast = s.CheckOut.Before(today)
	}

	doc.Tags = tagsFor(doc)
	doc.SearchableText = joinNonBlank(s.GuestName, s.Reference, s.ConfirmationNumber, s.SpecialRequests)
	return doc
}

// tagsFor emits facet labels in a fixed order.
func tagsFor(d Document) []string {
	tags := make([]string, 0, 5)
	if d.NumberOfGuests > 2 {
		tags = append(tags, TagGroup)
	}
	if d.NumberOfRooms > 1 {
		tags = append(tags, TagMultiRoom)
	}
	if d.StayDuration != nil && *d.StayDuration > longStayNights {
		tags = append(tags, TagLongStay)
	}
	switch d.Status {
	case booking.StatusCancelled:
		tags = append(tags, TagCancelled)
	case booking.StatusCheckedIn:
		tags = append(tags, TagActiveStay)
	}
	return tags
}

func joinNonBlank(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
