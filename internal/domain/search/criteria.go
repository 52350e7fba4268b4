package search

import (
	"slices"
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
)

// Criteria filters are AND-combined and each applies only when set.
type Criteria struct {
	UserID         *int64
	HotelID        *int64
	Statuses       []booking.Status
	CheckInFrom    *time.Time
	CheckInTo      *time.Time
	CheckOutFrom   *time.Time
	CheckOutTo     *time.Time
	MinAmountCents *int64
	MaxAmountCents *int64
	HotelCity      *string
	HotelCountry   *string
	RoomTypes      []string
	IsUpcoming     *bool
	IsPast         *bool
	PaymentStatus  *string
	CreatedAfter   *time.Time
	// Today dates the IsUpcoming and IsPast filters. Zero falls back to the flags
	// stored when the document was indexed.
	Today time.Time
	// Overlapping keeps documents whose stay intersects [From, To) and are not cancelled.
	Overlapping *DateRange
	Order       Order
}

type DateRange struct {
	From time.Time
	To   time.Time
}

type Order int

const (
	OrderCreatedDesc Order = iota
	OrderCheckInAsc
	OrderID
)

func (c Criteria) Matches(d Document) bool {
	if c.UserID != nil && d.UserID != *c.UserID {
		return false
	}
	if c.HotelID != nil && d.HotelID != *c.HotelID {
		return false
	}
	if len(c.Statuses) > 0 && !slices.Contains(c.Statuses, d.Status) {
		return false
	}
	if !withinDates(d.CheckInDate, c.CheckInFrom, c.CheckInTo) {
		return false
	}
	if !withinDates(d.CheckOutDate, c.CheckOutFrom, c.CheckOutTo) {
		return false
	}
	if c.MinAmountCents != nil && d.TotalCents < *c.MinAmountCents {
		return false
	}
	if c.MaxAmountCents != nil && d.TotalCents > *c.MaxAmountCents {
		return false
	}
	if c.HotelCity != nil && !strings.EqualFold(d.HotelCity, *c.HotelCity) {
		return false
	}
	if c.HotelCountry != nil && !strings.EqualFold(d.HotelCountry, *c.HotelCountry) {
		return false
	}
	if len(c.RoomTypes) > 0 && !slices.ContainsFunc(c.RoomTypes, func(rt string) bool { return strings.EqualFold(rt, d.RoomType) }) {
		return false
	}
	if c.IsUpcoming != nil && c.upcoming(d) != *c.IsUpcoming {
		return false
	}
	if c.IsPast != nil && c.past(d) != *c.IsPast {
		return false
	}
	if c.PaymentStatus != nil && !strings.EqualFold(d.PaymentStatus, *c.PaymentStatus) {
		return false
	}
	if c.CreatedAfter != nil && !d.CreatedAt.After(*c.CreatedAfter) {
		return false
	}
	if c.Overlapping != nil {
		if d.Status == booking.StatusCancelled {
			return false
		}
		if !booking.Overlaps(d.CheckInDate, d.CheckOutDate, booking.DateOf(c.Overlapping.From), booking.DateOf(c.Overlapping.To)) {
			return false
		}
	}
	return true
}

func (c Criteria) upcoming(d Document) bool {
	if c.Today.IsZero() {
		return d.IsUpcoming
	}
	return !d.CheckInDate.IsZero() && d.CheckInDate.After(booking.DateOf(c.Today))
}

func (c Criteria) past(d Document) bool {
	if c.Today.IsZero() {
		return d.IsPast
	}
	return !d.CheckOutDate.IsZero() && d.CheckOutDate.Before(booking.DateOf(c.Today))
}

// withinDates is inclusive on both bounds.
func withinDates(v time.Time, from, to *time.Time) bool {
	if from != nil && v.Before(booking.DateOf(*from)) {
		return false
	}
	if to != nil && v.After(booking.DateOf(*to)) {
		return false
	}
	return true
}

// Sort orders documents in place; ties fall back to id so pages are stable.
func (o Order) Sort(docs []Document) {
	slices.SortStableFunc(docs, func(a, b Document) int {
		switch o {
		case OrderCreatedDesc:
			if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
				return c
			}
		case OrderCheckInAsc:
			if c := a.CheckInDate.Compare(b.CheckInDate); c != 0 {
				return c
			}
		}
		return compareInt64(a.ID, b.ID)
	})
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
