package booking

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinRooms         = 1
	MaxRooms         = 5
	MaxGuestsPerRoom = 4

	basisPointsDenominator = 10_000
)

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is an amount in integer cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

// MoneyFromCents trusts the caller; used when reconstructing persisted amounts.
func MoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub floors at zero.
func (m Money) Sub(other Money) Money {
	remaining := m.cents - other.cents
	if remaining < 0 {
		remaining = 0
	}
	return Money{cents: remaining}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// MulBasisPoints scales by bps/10000, rounding half up to the cent.
func (m Money) MulBasisPoints(bps int64) Money {
	return Money{cents: (m.cents*bps + basisPointsDenominator/2) / basisPointsDenominator}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

type Occupancy struct {
	rooms  int
	guests int
}

func NewOccupancy(rooms, guests int) (Occupancy, error) {
	if rooms < MinRooms || rooms > MaxRooms {
		return Occupancy{}, invalid("numberOfRooms", fmt.Sprintf("number of rooms must be between %d and %d", MinRooms, MaxRooms))
	}
	if guests < 1 {
		return Occupancy{}, invalid("numberOfGuests", "at least one guest is required")
	}
	if guests > rooms*MaxGuestsPerRoom {
		return Occupancy{}, invalid("numberOfGuests", fmt.Sprintf("at most %d guests per room", MaxGuestsPerRoom))
	}
	return Occupancy{rooms: rooms, guests: guests}, nil
}

func (o Occupancy) Rooms() int  { return o.rooms }
func (o Occupancy) Guests() int { return o.guests }

type GuestContact struct {
	Name  string
	Email string
	Phone string
}

func DefaultGuestName(userID int64) string {
	return fmt.Sprintf("Guest %d", userID)
}

// withDefaults fills a blank guest name from the owning user.
func (g GuestContact) withDefaults(userID int64) GuestContact {
	if strings.TrimSpace(g.Name) == "" {
		g.Name = DefaultGuestName(userID)
	}
	return g
}
