package booking

import (
	"math"
	"time"
)

const MaxStayNights = 30

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NightsBetween counts calendar days from one date to another.
func NightsBetween(from, to time.Time) int {
	return int(math.Round(DateOf(to).Sub(DateOf(from)).Hours() / 24))
}

// Overlaps reports whether the half-open windows [a,b) and [c,d) intersect.
func Overlaps(a, b, c, d time.Time) bool {
	return a.Before(d) && c.Before(b)
}

type StayWindow struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayWindow(checkIn, checkOut time.Time) (StayWindow, error) {
	in, out := DateOf(checkIn), DateOf(checkOut)
	if in.IsZero() {
		return StayWindow{}, invalid("checkInDate", "check-in date is required")
	}
	if out.IsZero() {
		return StayWindow{}, invalid("checkOutDate", "check-out date is required")
	}
	if !out.After(in) {
		return StayWindow{}, invalid("checkOutDate", "check-out date must be at least one day after check-in")
	}
	return StayWindow{checkIn: in, checkOut: out}, nil
}

func (w StayWindow) CheckIn() time.Time  { return w.checkIn }
func (w StayWindow) CheckOut() time.Time { return w.checkOut }

func (w StayWindow) IsZero() bool {
	return w.checkIn.IsZero() || w.checkOut.IsZero()
}

func (w StayWindow) Nights() int {
	if w.IsZero() {
		return 0
	}
	return NightsBetween(w.checkIn, w.checkOut)
}

func (w StayWindow) Overlaps(other StayWindow) bool {
	return Overlaps(w.checkIn, w.checkOut, other.checkIn, other.checkOut)
}

func (w StayWindow) Equal(other StayWindow) bool {
	return w.checkIn.Equal(other.checkIn) && w.checkOut.Equal(other.checkOut)
}
