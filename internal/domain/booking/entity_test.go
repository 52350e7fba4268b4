//go:build unit

package booking_test

import (
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsNew())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.Equal(t, booking.PaymentStatusPending, actual.PaymentStatus())
		assert.Equal(t, 2, actual.Stay().Nights())
		assert.Equal(t, int64(23000), actual.Price().Total.Cents())
		assert.Equal(t, builder.FixedNow, actual.CreatedAt())
		assert.Equal(t, "tester", actual.CreatedBy())
		assert.Equal(t, "tester", actual.UpdatedBy())
		assert.Equal(t, int64(0), actual.Version())
	})

	t.Run("guest name defaults from user", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.UserID = 42
			b.GuestName = "  "
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Guest 42", actual.Guest().Name)
	})

	t.Run("validation failure", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Guests = 9 }).BuildDomain()
		assert.ErrorIs(t, err, booking.ErrValidation)
	})

	t.Run("negative discount", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.DiscountCents = -1 }).BuildDomain()
		assert.ErrorIs(t, err, booking.ErrValidation)
	})

	t.Run("snapshot round trip", func(t *testing.T) {
		snap := builder.NewBookingBuilder().BuildReconstructed()
		require.NoError(t, snap.Cancel(builder.FixedNow, "ops", "changed plans"))

		if diff := cmp.Diff(snap.Snapshot(), booking.Reconstruct(snap.Snapshot()).Snapshot()); diff != "" {
			t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestReservationLifecycle(t *testing.T) {
	now := builder.FixedNow

	t.Run("cancel stamps actor and default reason", func(t *testing.T) {
		r := builder.NewBookingBuilder().BuildReconstructed()
		require.NoError(t, r.Cancel(now, "agent-7", ""))

		assert.Equal(t, booking.StatusCancelled, r.Status())
		require.NotNil(t, r.Cancellation())
		assert.Equal(t, "agent-7", r.Cancellation().By)
		assert.Equal(t, booking.DefaultCancelReason, r.Cancellation().Reason)
		assert.Equal(t, now, r.Cancellation().At)
		assert.Equal(t, "agent-7", r.UpdatedBy())
	})

	t.Run("cancel from non modifiable states", func(t *testing.T) {
		for _, s := range []booking.Status{booking.StatusCheckedIn, booking.StatusCheckedOut, booking.StatusCancelled, booking.StatusNoShow} {
			r := builder.NewBookingBuilder().WithStatus(s).BuildReconstructed()
			assert.ErrorIs(t, r.Cancel(now, "ops", ""), booking.ErrNotCancellable, s.String())
		}
	})

	t.Run("check-in on the check-in date", func(t *testing.T) {
		r := builder.NewBookingBuilder().WithStay(0, 2).BuildReconstructed()
		require.NoError(t, r.CheckIn(now, "front-desk"))

		assert.Equal(t, booking.StatusCheckedIn, r.Status())
		require.NotNil(t, r.CheckedInAt())
		assert.Equal(t, now, *r.CheckedInAt())
	})

	t.Run("check-in too early", func(t *testing.T) {
		r := builder.NewBookingBuilder().WithStay(5, 2).BuildReconstructed()
		assert.ErrorIs(t, r.CheckIn(now, "front-desk"), booking.ErrTooEarly)
		assert.Equal(t, booking.StatusConfirmed, r.Status())
	})

	t.Run("check-in from pending", func(t *testing.T) {
		r := builder.NewBookingBuilder().WithStay(0, 2).WithStatus(booking.StatusPending).BuildReconstructed()
		assert.ErrorIs(t, r.CheckIn(now, "front-desk"), booking.ErrInvalidTransition)
	})

	t.Run("check-out requires check-in", func(t *testing.T) {
		r := builder.NewBookingBuilder().BuildReconstructed()
		assert.ErrorIs(t, r.CheckOut(now, "front-desk"), booking.ErrInvalidTransition)

		r = builder.NewBookingBuilder().WithStay(-2, 2).WithStatus(booking.StatusCheckedIn).BuildReconstructed()
		require.NoError(t, r.CheckOut(now, "front-desk"))
		assert.Equal(t, booking.StatusCheckedOut, r.Status())
		require.NotNil(t, r.CheckedOutAt())
	})
}

func TestRefundAmount(t *testing.T) {
	now := builder.FixedNow

	testCases := []struct {
		name    string
		offset  int
		status  booking.Status
		wantCts int64
	}{
		{"cancelled two days out", 2, booking.StatusCancelled, 23000},
		{"cancelled one day out", 1, booking.StatusCancelled, 0},
		{"cancelled same day", 0, booking.StatusCancelled, 11500},
		{"cancelled after check-in date", -1, booking.StatusCancelled, 0},
		{"not cancelled", 10, booking.StatusConfirmed, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := builder.NewBookingBuilder().WithStay(tc.offset, 2).WithStatus(tc.status).BuildReconstructed()
			assert.Equal(t, tc.wantCts, r.RefundAmount(now).Cents())
		})
	}
}

func TestApplyPatch(t *testing.T) {
	services := builder.NewServices(clock.NewMockClock(builder.FixedNow))

	t.Run("dates change re-prices", func(t *testing.T) {
		r := builder.NewBookingBuilder().BuildReconstructed()
		res, err := r.ApplyPatch(services, booking.Patch{CheckOut: ptr(builder.Day(5))}, "editor")
		require.NoError(t, err)

		assert.True(t, res.DatesChanged)
		assert.True(t, res.Repriced)
		assert.Equal(t, 4, r.Stay().Nights())
		assert.Equal(t, int64(46000), r.Price().Total.Cents())
		assert.Equal(t, "editor", r.UpdatedBy())
	})

	t.Run("same dates are not a change", func(t *testing.T) {
		r := builder.NewBookingBuilder().BuildReconstructed()
		res, err := r.ApplyPatch(services, booking.Patch{CheckIn: ptr(builder.Day(1))}, "editor")
		require.NoError(t, err)
		assert.Equal(t, booking.PatchResult{}, res)
	})

	t.Run("rooms change re-prices", func(t *testing.T) {
		r := builder.NewBookingBuilder().BuildReconstructed()
		res, err := r.ApplyPatch(services, booking.Patch{Rooms: ptr(2)}, "editor")
		require.NoError(t, err)
		assert.False(t, res.DatesChanged)
		assert.True(t, res.Repriced)
		assert.Equal(t, int64(46000), r.Price().Total.Cents())
	})

	t.Run("discount change re-prices", func(t *testing.T) {
		r := builder.NewBookingBuilder().BuildReconstructed()
		res, err := r.ApplyPatch(services, booking.Patch{DiscountCents: ptr(int64(5000))}, "editor")
		require.NoError(t, err)
		assert.True(t, res.Repriced)
		assert.Equal(t, int64(17250), r.Price().Total.Cents())
	})

	t.Run("contact fields only", func(t *testing.T) {
		r := builder.NewBookingBuilder().BuildReconstructed()
		before := r.Price()
		res, err := r.ApplyPatch(services, booking.Patch{
			GuestEmail:      ptr("new@example.com"),
			SpecialRequests: ptr("late arrival"),
		}, "editor")
		require.NoError(t, err)

		assert.False(t, res.Repriced)
		assert.Equal(t, before, r.Price())
		assert.Equal(t, "new@example.com", r.Guest().Email)
		assert.Equal(t, "Alice Martin", r.Guest().Name)
		assert.Equal(t, "late arrival", r.SpecialRequests())
	})

	t.Run("not modifiable", func(t *testing.T) {
		r := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedIn).BuildReconstructed()
		_, err := r.ApplyPatch(services, booking.Patch{Rooms: ptr(2)}, "editor")
		assert.ErrorIs(t, err, booking.ErrNotModifiable)
	})

	t.Run("invalid patch leaves the booking untouched", func(t *testing.T) {
		r := builder.NewBookingBuilder().BuildReconstructed()
		before := r.Snapshot()
		_, err := r.ApplyPatch(services, booking.Patch{
			GuestName: ptr("Bob"),
			Guests:    ptr(8),
		}, "editor")
		assert.ErrorIs(t, err, booking.ErrValidation)
		assert.Equal(t, before, r.Snapshot())
	})

	t.Run("moving check-in into the past", func(t *testing.T) {
		r := builder.NewBookingBuilder().BuildReconstructed()
		_, err := r.ApplyPatch(services, booking.Patch{CheckIn: ptr(builder.Day(-3))}, "editor")
		assert.ErrorIs(t, err, booking.ErrValidation)
	})
}
