//go:build unit

package indexing_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/pagination"
	"hotel-booking/internal/testutil/builder"
	sharedmock "hotel-booking/internal/testutil/mock/shared"
	"hotel-booking/internal/testutil/memstore"
	"hotel-booking/internal/usecase/indexing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var hotels = memstore.Hotels{
	100: {Name: "Grand Hotel", City: "Paris", Country: "France"},
	200: {Name: "Harbour Inn", City: "Lisbon", Country: "Portugal"},
}

func seedBookings(store *memstore.Store, n int) {
	snaps := make([]booking.Snapshot, 0, n)
	for i := 1; i <= n; i++ {
		hotel := int64(100)
		if i%2 == 0 {
			hotel = 200
		}
		snaps = append(snaps, builder.NewBookingBuilder().
			WithOwner(int64(i), hotel).
			WithStay(i, 2).
			With(func(b *builder.BookingBuilder) {
				b.Reference = fmt.Sprintf("HRS_20250310093000_%04d", i)
				b.Confirmation = fmt.Sprintf("CONF20250310%06d", i)
			}).
			BuildSnapshot())
	}
	store.Seed(snaps...)
}

func newSynchronizer(store *memstore.Store, index *memstore.Index, batch int) *indexing.Synchronizer {
	return indexing.NewSynchronizer(store, index, hotels, clock.NewMockClock(builder.FixedNow), zerolog.Nop(), indexing.SyncOptions{BatchSize: batch})
}

// =============================================================================
// Run
// =============================================================================

func TestSynchronizer_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("success: empty primary store is a no-op", func(t *testing.T) {
		store, index := memstore.New(), memstore.NewIndex()

		report, err := newSynchronizer(store, index, 2).Run(ctx)
		require.NoError(t, err)
		assert.Zero(t, report.Processed)
		assert.Zero(t, report.Pages)
		assert.Equal(t, 0, index.SaveAllCalls)
		assert.Equal(t, 0, store.FindAllCalls)
	})

	t.Run("success: every booking is indexed page by page", func(t *testing.T) {
		store, index := memstore.New(), memstore.NewIndex()
		seedBookings(store, 5)

		report, err := newSynchronizer(store, index, 2).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Pages)
		assert.Equal(t, 5, report.Processed)
		assert.Equal(t, 5, report.Indexed)
		assert.Equal(t, 0, report.Updated)
		assert.Equal(t, 3, index.SaveAllCalls)
		assert.NotEqual(t, uuid.Nil, report.RunID)

		docs := index.Docs()
		require.Len(t, docs, 5)
		assert.Equal(t, "Harbour Inn", docs[2].HotelName)
		assert.Equal(t, "Paris", docs[3].HotelCity)
	})

	t.Run("success: second run only updates", func(t *testing.T) {
		store, index := memstore.New(), memstore.NewIndex()
		seedBookings(store, 4)
		sync := newSynchronizer(store, index, 3)

		_, err := sync.Run(ctx)
		require.NoError(t, err)
		before := index.Docs()

		report, err := sync.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, report.Indexed)
		assert.Equal(t, 4, report.Updated)
		assert.Equal(t, before, index.Docs(), "re-running over unchanged data must not change documents")
	})

	t.Run("success: page boundary exactly at batch size", func(t *testing.T) {
		store, index := memstore.New(), memstore.NewIndex()
		seedBookings(store, 4)

		report, err := newSynchronizer(store, index, 2).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Pages)
		assert.Equal(t, 4, report.Processed)
	})

	t.Run("error: read failure keeps earlier pages and reports progress", func(t *testing.T) {
		store, index := memstore.New(), memstore.NewIndex()
		seedBookings(store, 5)
		store.OnFindAll = func(page pagination.Request) error {
			if page.Number == 1 {
				return errors.New("connection reset by peer")
			}
			return nil
		}

		_, err := newSynchronizer(store, index, 2).Run(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, indexing.ErrSyncFailure))

		var failure *indexing.SyncFailure
		require.True(t, errors.As(err, &failure))
		assert.Equal(t, 1, failure.Page)
		assert.Equal(t, 2, failure.Progress.Processed)
		assert.Len(t, index.Docs(), 2)
	})

	t.Run("error: cancelled context stops before the first page", func(t *testing.T) {
		store, index := memstore.New(), memstore.NewIndex()
		seedBookings(store, 3)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := newSynchronizer(store, index, 2).Run(cctx)
		assert.True(t, errors.Is(err, indexing.ErrSyncFailure))
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Empty(t, index.Docs())
	})

	t.Run("error: concurrent run is rejected", func(t *testing.T) {
		store, index := memstore.New(), memstore.NewIndex()
		seedBookings(store, 1)
		started, release := make(chan struct{}), make(chan struct{})
		store.OnFindAll = func(pagination.Request) error {
			close(started)
			<-release
			return nil
		}
		sync := newSynchronizer(store, index, 2)

		done := make(chan error, 1)
		go func() {
			_, err := sync.Run(ctx)
			done <- err
		}()
		<-started

		_, err := sync.Run(ctx)
		assert.True(t, errors.Is(err, indexing.ErrSyncInProgress))

		close(release)
		assert.NoError(t, <-done)
	})
}

func TestSynchronizer_IndexFailures(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setupMock func(idx *sharedmock.MockSearchIndex, dir *sharedmock.MockHotelDirectory)
	}{
		{
			name: "error: batch write fails",
			setupMock: func(idx *sharedmock.MockSearchIndex, dir *sharedmock.MockHotelDirectory) {
				dir.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(map[int64]search.HotelInfo{}, nil)
				idx.EXPECT().ExistsByID(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
				idx.EXPECT().SaveAll(gomock.Any(), gomock.Len(2)).Return(errors.New("READONLY You can't write against a read only replica"))
			},
		},
		{
			name: "error: classification fails",
			setupMock: func(idx *sharedmock.MockSearchIndex, dir *sharedmock.MockHotelDirectory) {
				dir.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(map[int64]search.HotelInfo{}, nil).AnyTimes()
				idx.EXPECT().ExistsByID(gomock.Any(), gomock.Any()).Return(false, errors.New("i/o timeout")).MinTimes(1).MaxTimes(2)
			},
		},
		{
			name: "error: hotel lookup fails",
			setupMock: func(idx *sharedmock.MockSearchIndex, dir *sharedmock.MockHotelDirectory) {
				dir.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(nil, errors.New("hotels table missing"))
				idx.EXPECT().ExistsByID(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			idx := sharedmock.NewMockSearchIndex(ctrl)
			dir := sharedmock.NewMockHotelDirectory(ctrl)
			tc.setupMock(idx, dir)

			store := memstore.New()
			seedBookings(store, 2)
			sync := indexing.NewSynchronizer(store, idx, dir, clock.NewMockClock(builder.FixedNow), zerolog.Nop(), indexing.SyncOptions{BatchSize: 10})

			report, err := sync.Run(ctx)
			require.Error(t, err)
			assert.True(t, errors.Is(err, indexing.ErrSyncFailure))

			var failure *indexing.SyncFailure
			require.True(t, errors.As(err, &failure))
			assert.Equal(t, 0, failure.Page)
			assert.Equal(t, 0, report.Processed)
		})
	}
}
