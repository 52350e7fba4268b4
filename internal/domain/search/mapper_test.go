//go:build unit

package search_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paris = search.HotelInfo{Name: "Hotel Lumiere", City: "Paris", Country: "France"}

func TestMap(t *testing.T) {
	now := builder.FixedNow

	t.Run("group long stay in progress", func(t *testing.T) {
		r := builder.NewBookingBuilder().
			WithStay(-2, 14).
			WithStatus(booking.StatusCheckedIn).
			With(func(b *builder.BookingBuilder) {
				b.Rooms = 3
				b.Guests = 6
			}).
			BuildReconstructed()

		doc := search.Map(r, paris, now)

		assert.Equal(t, []string{"group", "multi-room", "long-stay", "active-stay"}, doc.Tags)
		require.NotNil(t, doc.StayDuration)
		assert.Equal(t, 14, *doc.StayDuration)
		assert.True(t, doc.IsActive)
		assert.False(t, doc.IsUpcoming)
		assert.False(t, doc.IsPast)
	})

	t.Run("copies fields and hotel data", func(t *testing.T) {
		r := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 7 }).BuildReconstructed()
		doc := search.Map(r, paris, now)

		assert.Equal(t, int64(7), doc.ID)
		assert.Equal(t, "Paris", doc.HotelCity)
		assert.Equal(t, r.Reference(), doc.BookingReference)
		assert.Equal(t, r.Price().Total.Cents(), doc.TotalCents)
		assert.True(t, doc.IsUpcoming)
		assert.Empty(t, doc.Tags)
		assert.NotNil(t, doc.Tags)
	})

	t.Run("cancelled tag", func(t *testing.T) {
		r := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildReconstructed()
		doc := search.Map(r, search.HotelInfo{}, now)
		assert.Equal(t, []string{"cancelled"}, doc.Tags)
		assert.False(t, doc.IsActive)
	})

	t.Run("past stay", func(t *testing.T) {
		r := builder.NewBookingBuilder().WithStay(-10, 3).WithStatus(booking.StatusCheckedOut).BuildReconstructed()
		doc := search.Map(r, paris, now)
		assert.True(t, doc.IsPast)
		assert.False(t, doc.IsUpcoming)
	})

	t.Run("searchable text skips blank parts", func(t *testing.T) {
		r := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.GuestName = "Alice Martin"
			b.SpecialRequests = "   "
		}).BuildReconstructed()
		doc := search.Map(r, paris, now)

		assert.Equal(t, "Alice Martin HRS_20250310093000_0001 CONF20250310000001", doc.SearchableText)
		assert.NotContains(t, doc.SearchableText, "null")
		assert.NotContains(t, doc.SearchableText, "  ")
	})

	t.Run("missing dates leave stay duration empty", func(t *testing.T) {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		snap.CheckOut = time.Time{}
		doc := search.Map(booking.Reconstruct(snap), paris, now)

		assert.Nil(t, doc.StayDuration)
		assert.False(t, doc.IsPast)
		assert.NotContains(t, doc.Tags, "long-stay")
	})

	t.Run("idempotent", func(t *testing.T) {
		r := builder.NewBookingBuilder().WithStay(3, 9).With(func(b *builder.BookingBuilder) {
			b.SpecialRequests = "quiet room"
		}).BuildReconstructed()

		first := search.Map(r, paris, now)
		second := search.Map(r, paris, now)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Document mismatch (-want +got):\n%s", diff)
		}

		a, err := json.Marshal(first)
		require.NoError(t, err)
		b, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
