package request

import (
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/pkg/pagination"
)

type PageQuery struct {
	Page int `form:"page" binding:"gte=0"`
	Size int `form:"size" binding:"gte=0,lte=200"`
}

func (q PageQuery) Request() pagination.Request {
	return pagination.NewRequest(q.Page, q.Size)
}

type TextSearchQuery struct {
	PageQuery
	Q string `form:"q" binding:"required"`
}

// BookingFilterQuery carries the optional filters of a user booking search.
type BookingFilterQuery struct {
	PageQuery
	Status       []string `form:"status"`
	CheckInFrom  string   `form:"checkInFrom"`
	CheckInTo    string   `form:"checkInTo"`
	CheckOutFrom string   `form:"checkOutFrom"`
	CheckOutTo   string   `form:"checkOutTo"`
	MinAmount    *int64   `form:"minAmountCents"`
	MaxAmount    *int64   `form:"maxAmountCents"`
	City         string   `form:"city"`
	Country      string   `form:"country"`
	RoomType     []string `form:"roomType"`
	Upcoming     *bool    `form:"upcoming"`
	Past         *bool    `form:"past"`
	Payment      string   `form:"paymentStatus"`
}

func (q BookingFilterQuery) ToCriteria() (search.Criteria, error) {
	c := search.Criteria{
		MinAmountCents: q.MinAmount,
		MaxAmountCents: q.MaxAmount,
		IsUpcoming:     q.Upcoming,
		IsPast:         q.Past,
		RoomTypes:      q.RoomType,
		HotelCity:      optional(q.City),
		HotelCountry:   optional(q.Country),
		PaymentStatus:  optional(q.Payment),
		Order:          search.OrderCheckInAsc,
	}
	for _, raw := range q.Status {
		s, err := booking.ParseStatus(strings.ToUpper(strings.TrimSpace(raw)))
		if err != nil {
			return search.Criteria{}, &booking.ValidationError{Field: "status", Message: "unknown status " + raw}
		}
		c.Statuses = append(c.Statuses, s)
	}

	dates := []struct {
		field string
		value string
		dst   **time.Time
	}{
		{"checkInFrom", q.CheckInFrom, &c.CheckInFrom},
		{"checkInTo", q.CheckInTo, &c.CheckInTo},
		{"checkOutFrom", q.CheckOutFrom, &c.CheckOutFrom},
		{"checkOutTo", q.CheckOutTo, &c.CheckOutTo},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		t, err := ParseDate(d.field, d.value)
		if err != nil {
			return search.Criteria{}, err
		}
		*d.dst = &t
	}
	return c, nil
}

type RecentQuery struct {
	PageQuery
	Hours int `form:"hours" binding:"gte=0,lte=8760"`
}

type StayQuery struct {
	CheckIn  string `form:"checkIn" binding:"required"`
	CheckOut string `form:"checkOut" binding:"required"`
}

type RangeQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

type LimitQuery struct {
	Limit int `form:"limit" binding:"gte=0,lte=100"`
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
