//go:build unit

package booking_test

import (
	"errors"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/testutil/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProposal(t *testing.T) {
	valid := func() booking.Proposal {
		return builder.NewBookingBuilder().BuildParams().Proposal()
	}

	testCases := []struct {
		name      string
		mutate    func(*booking.Proposal)
		wantField string
	}{
		{name: "valid proposal"},
		{name: "missing user id", mutate: func(p *booking.Proposal) { p.UserID = 0 }, wantField: "userId"},
		{name: "negative hotel id", mutate: func(p *booking.Proposal) { p.HotelID = -4 }, wantField: "hotelId"},
		{
			name: "first violation wins",
			mutate: func(p *booking.Proposal) {
				p.UserID = 0
				p.HotelID = 0
				p.Rooms = 0
			},
			wantField: "userId",
		},
		{name: "check-in in the past", mutate: func(p *booking.Proposal) { p.CheckIn = builder.Day(-1) }, wantField: "checkInDate"},
		{name: "check-in today", mutate: func(p *booking.Proposal) { p.CheckIn = builder.Day(0) }},
		{name: "check-out equals check-in", mutate: func(p *booking.Proposal) { p.CheckOut = p.CheckIn }, wantField: "checkOutDate"},
		{
			name: "check-in exactly one year ahead",
			mutate: func(p *booking.Proposal) {
				p.CheckIn = builder.Today().AddDate(1, 0, 0)
				p.CheckOut = p.CheckIn.AddDate(0, 0, 2)
			},
		},
		{
			name: "check-in beyond one year",
			mutate: func(p *booking.Proposal) {
				p.CheckIn = builder.Today().AddDate(1, 0, 1)
				p.CheckOut = p.CheckIn.AddDate(0, 0, 2)
			},
			wantField: "checkInDate",
		},
		{name: "thirty nights", mutate: func(p *booking.Proposal) { p.CheckOut = p.CheckIn.AddDate(0, 0, 30) }},
		{name: "thirty one nights", mutate: func(p *booking.Proposal) { p.CheckOut = p.CheckIn.AddDate(0, 0, 31) }, wantField: "checkOutDate"},
		{name: "zero rooms", mutate: func(p *booking.Proposal) { p.Rooms = 0 }, wantField: "numberOfRooms"},
		{name: "six rooms", mutate: func(p *booking.Proposal) { p.Rooms = 6 }, wantField: "numberOfRooms"},
		{name: "no guests", mutate: func(p *booking.Proposal) { p.Guests = 0 }, wantField: "numberOfGuests"},
		{name: "four guests in one room", mutate: func(p *booking.Proposal) { p.Guests = 4 }},
		{name: "five guests in one room", mutate: func(p *booking.Proposal) { p.Guests = 5 }, wantField: "numberOfGuests"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid()
			if tc.mutate != nil {
				tc.mutate(&p)
			}

			err := booking.ValidateProposal(p, builder.FixedNow)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, booking.ErrValidation)
			var verr *booking.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.wantField, verr.Field)
		})
	}
}
