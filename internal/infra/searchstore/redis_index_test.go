//go:build unit

package searchstore_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/searchstore"
	"hotel-booking/internal/pkg/pagination"
	"hotel-booking/internal/testutil/builder"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIndex(t *testing.T) (*searchstore.RedisIndex, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return searchstore.NewRedisIndex(rdb, "test", zerolog.Nop()), mr
}

func doc(id int64, hotel int64, checkIn int, status booking.Status) search.Document {
	snap := builder.NewBookingBuilder().
		WithOwner(id, hotel).
		WithStay(checkIn, 2).
		WithStatus(status).
		With(func(b *builder.BookingBuilder) {
			b.ID = id
			b.Reference = fmt.Sprintf("HRS_20250310093000_%04d", id)
			b.Confirmation = fmt.Sprintf("CONF20250310%06d", id)
		}).
		BuildSnapshot()
	return search.Map(booking.Reconstruct(snap), search.HotelInfo{Name: "Grand Hotel", City: "Paris", Country: "France"}, builder.FixedNow)
}

// =============================================================================
// Writes
// =============================================================================

func TestRedisIndex_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	idx, _ := newIndex(t)
	want := doc(1, 100, 2, booking.StatusConfirmed)

	require.NoError(t, idx.Save(ctx, want))

	exists, err := idx.ExistsByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := idx.FindByID(ctx, 1)
	require.NoError(t, err)
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	byRef, err := idx.FindByReference(ctx, want.BookingReference)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byRef.ID)

	byConf, err := idx.FindByConfirmationNumber(ctx, want.ConfirmationNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byConf.ID)
}

func TestRedisIndex_SaveAllIsIdempotent(t *testing.T) {
	ctx := context.Background()
	idx, _ := newIndex(t)
	docs := []search.Document{doc(1, 100, 1, booking.StatusConfirmed), doc(2, 100, 4, booking.StatusPending)}

	require.NoError(t, idx.SaveAll(ctx, docs))
	require.NoError(t, idx.SaveAll(ctx, docs))

	n, err := idx.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, idx.SaveAll(ctx, nil))
}

func TestRedisIndex_Delete(t *testing.T) {
	ctx := context.Background()
	idx, _ := newIndex(t)
	d := doc(1, 100, 1, booking.StatusConfirmed)
	require.NoError(t, idx.Save(ctx, d))

	require.NoError(t, idx.DeleteByID(ctx, 1))
	require.NoError(t, idx.DeleteByID(ctx, 1), "deleting twice is a no-op")

	_, err := idx.FindByID(ctx, 1)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	_, err = idx.FindByReference(ctx, d.BookingReference)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	n, err := idx.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// =============================================================================
// Reads
// =============================================================================

func TestRedisIndex_Search(t *testing.T) {
	ctx := context.Background()
	idx, _ := newIndex(t)
	require.NoError(t, idx.SaveAll(ctx, []search.Document{
		doc(1, 100, 5, booking.StatusConfirmed),
		doc(2, 200, 1, booking.StatusConfirmed),
		doc(3, 100, 2, booking.StatusCancelled),
		doc(4, 100, 3, booking.StatusPending),
	}))

	hotel := int64(100)
	page, err := idx.Search(ctx, search.Criteria{HotelID: &hotel, Order: search.OrderCheckInAsc}, pagination.NewRequest(0, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalItems)
	assert.True(t, page.HasNext)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(3), page.Items[0].ID)
	assert.Equal(t, int64(4), page.Items[1].ID)

	scanned, err := idx.Scan(ctx, search.Criteria{Statuses: []booking.Status{booking.StatusCancelled}})
	require.NoError(t, err)
	require.Len(t, scanned, 1)
	assert.Equal(t, int64(3), scanned[0].ID)

	text, err := idx.FullTextSearch(ctx, "HRS_20250310093000_0002", pagination.NewRequest(0, 10))
	require.NoError(t, err)
	require.NotEmpty(t, text.Items)
	assert.Equal(t, int64(2), text.Items[0].ID)
}

func TestRedisIndex_CorruptDocumentIsSkipped(t *testing.T) {
	ctx := context.Background()
	idx, mr := newIndex(t)
	require.NoError(t, idx.Save(ctx, doc(1, 100, 1, booking.StatusConfirmed)))
	require.NoError(t, idx.Save(ctx, doc(2, 100, 4, booking.StatusConfirmed)))
	require.NoError(t, mr.Set("{test:search}:doc:2", "{not json"))

	docs, err := idx.Scan(ctx, search.Criteria{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, int64(1), docs[0].ID)
}

func TestRedisIndex_KeysShareOneHashTag(t *testing.T) {
	ctx := context.Background()
	idx, mr := newIndex(t)
	require.NoError(t, idx.SaveAll(ctx, []search.Document{
		doc(1, 100, 1, booking.StatusConfirmed),
		doc(2, 200, 4, booking.StatusCancelled),
	}))

	keys := mr.Keys()
	require.NotEmpty(t, keys)
	for _, k := range keys {
		assert.True(t, strings.HasPrefix(k, "{test:search}:"), "key %q outside the hash tag", k)
	}
}

func TestRedisIndex_StoreFailure(t *testing.T) {
	ctx := context.Background()
	idx, mr := newIndex(t)
	mr.Close()

	_, err := idx.ExistsByID(ctx, 1)
	assert.True(t, infra.IsKind(err, infra.KindStoreFailure))

	err = idx.SaveAll(ctx, []search.Document{doc(1, 100, 1, booking.StatusConfirmed)})
	assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
}
