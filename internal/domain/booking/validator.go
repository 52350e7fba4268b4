package booking

import (
	"fmt"
	"time"
)

// Proposal is the part of a booking request the validator inspects.
type Proposal struct {
	UserID   int64
	HotelID  int64
	CheckIn  time.Time
	CheckOut time.Time
	Rooms    int
	Guests   int
}

// ValidateProposal applies the creation rules in order and returns the first violation.
func ValidateProposal(p Proposal, today time.Time) error {
	if p.UserID <= 0 {
		return invalid("userId", "user id is required and must be positive")
	}
	if p.HotelID <= 0 {
		return invalid("hotelId", "hotel id is required and must be positive")
	}
	if err := ValidateDates(p.CheckIn, p.CheckOut, today); err != nil {
		return err
	}
	return ValidateOccupancy(p.Rooms, p.Guests)
}

func ValidateDates(checkIn, checkOut, today time.Time) error {
	if checkIn.IsZero() {
		return invalid("checkInDate", "check-in date is required")
	}
	if checkOut.IsZero() {
		return invalid("checkOutDate", "check-out date is required")
	}

	in, out, day := DateOf(checkIn), DateOf(checkOut), DateOf(today)
	if in.Before(day) {
		return invalid("checkInDate", "check-in date cannot be in the past")
	}
	if out.Before(in.AddDate(0, 0, 1)) {
		return invalid("checkOutDate", "check-out date must be at least one day after check-in")
	}
	if in.After(day.AddDate(1, 0, 0)) {
		return invalid("checkInDate", "check-in date cannot be more than one year in advance")
	}
	if NightsBetween(in, out) > MaxStayNights {
		return invalid("checkOutDate", fmt.Sprintf("stay cannot exceed %d nights", MaxStayNights))
	}
	return nil
}

func ValidateOccupancy(rooms, guests int) error {
	_, err := NewOccupancy(rooms, guests)
	return err
}
