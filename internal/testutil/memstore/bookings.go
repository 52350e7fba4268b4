//go:build unit

// Package memstore holds in-memory stand-ins for the persistence ports.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/pagination"
	"hotel-booking/internal/usecase/shared"
)

// Store is a primary store whose transactions serialize on one mutex and roll
// back by restoring a copy of the rows.
type Store struct {
	mu     sync.Mutex
	rows   map[int64]booking.Snapshot
	nextID int64

	// OnSave runs before every Save; a non-nil error aborts the write.
	OnSave func(r *booking.Reservation) error
	// OnFindAll runs before every FindAll; a non-nil error fails the read.
	OnFindAll func(page pagination.Request) error

	SaveCalls    int
	FindAllCalls int
}

func New() *Store {
	return &Store{rows: make(map[int64]booking.Snapshot)}
}

// Seed stores snapshots as-is, assigning ids to those without one.
func (s *Store) Seed(snaps ...booking.Snapshot) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.SeedLocked(snaps...)
}

// SeedLocked is Seed for callers already inside a transaction, such as OnSave.
// It stands in for a concurrent writer that committed first.
func (s *Store) SeedLocked(snaps ...booking.Snapshot) []int64 {
	ids := make([]int64, 0, len(snaps))
	for _, snap := range snaps {
		if snap.ID == 0 {
			s.nextID++
			snap.ID = s.nextID
		} else if snap.ID > s.nextID {
			s.nextID = snap.ID
		}
		s.rows[snap.ID] = snap
		ids = append(ids, snap.ID)
	}
	return ids
}

func (s *Store) Get(id int64) (booking.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.rows[id]
	return snap, ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := maps.Clone(s.rows)
	nextID := s.nextID
	if err := fn(ctx, &tx{repo: &repo{s: s}}); err != nil {
		s.rows = backup
		s.nextID = nextID
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.BookingReader) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &repo{s: s})
}

func (s *Store) Bookings() shared.BookingReader {
	return &lockedReader{s: s}
}

type tx struct {
	repo *repo
}

func (t *tx) Bookings() shared.BookingRepository {
	return t.repo
}

// repo assumes the caller holds s.mu.
type repo struct {
	s *Store
}

func (r *repo) sorted(keep func(booking.Snapshot) bool) []booking.Snapshot {
	out := make([]booking.Snapshot, 0, len(r.s.rows))
	for _, id := range slices.Sorted(maps.Keys(r.s.rows)) {
		if snap := r.s.rows[id]; keep == nil || keep(snap) {
			out = append(out, snap)
		}
	}
	return out
}

func reconstructAll(snaps []booking.Snapshot) []*booking.Reservation {
	out := make([]*booking.Reservation, len(snaps))
	for i, snap := range snaps {
		out[i] = booking.Reconstruct(snap)
	}
	return out
}

func (r *repo) FindByID(_ context.Context, id int64) (*booking.Reservation, error) {
	snap, ok := r.s.rows[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return booking.Reconstruct(snap), nil
}

func (r *repo) FindByReference(_ context.Context, reference string) (*booking.Reservation, error) {
	for _, snap := range r.s.rows {
		if snap.Reference == reference {
			return booking.Reconstruct(snap), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
}

func (r *repo) FindAll(_ context.Context, page pagination.Request) (pagination.Page[*booking.Reservation], error) {
	r.s.FindAllCalls++
	if r.s.OnFindAll != nil {
		if err := r.s.OnFindAll(page); err != nil {
			return pagination.Page[*booking.Reservation]{}, err
		}
	}
	return pagination.Slice(reconstructAll(r.sorted(nil)), page), nil
}

func (r *repo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.rows)), nil
}

func (r *repo) FindByUser(_ context.Context, userID int64) ([]*booking.Reservation, error) {
	snaps := r.sorted(func(s booking.Snapshot) bool { return s.UserID == userID })
	slices.SortStableFunc(snaps, func(a, b booking.Snapshot) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return reconstructAll(snaps), nil
}

func (r *repo) FindByHotel(_ context.Context, hotelID int64) ([]*booking.Reservation, error) {
	snaps := r.sorted(func(s booking.Snapshot) bool { return s.HotelID == hotelID })
	slices.SortStableFunc(snaps, func(a, b booking.Snapshot) int { return a.CheckIn.Compare(b.CheckIn) })
	return reconstructAll(snaps), nil
}

func (r *repo) LockScope(_ context.Context, _, _ int64) error {
	return nil
}

func (r *repo) FindOverlapping(_ context.Context, q shared.OverlapQuery) ([]*booking.Reservation, error) {
	return reconstructAll(r.sorted(func(s booking.Snapshot) bool {
		return s.UserID == q.UserID &&
			s.HotelID == q.HotelID &&
			s.Status != booking.StatusCancelled &&
			s.ID != q.ExcludeID &&
			booking.Overlaps(s.CheckIn, s.CheckOut, q.CheckIn, q.CheckOut)
	})), nil
}

func (r *repo) ExistsByReference(_ context.Context, reference string) (bool, error) {
	return len(r.sorted(func(s booking.Snapshot) bool { return s.Reference == reference })) > 0, nil
}

func (r *repo) ExistsByConfirmationNumber(_ context.Context, confirmationNumber string) (bool, error) {
	return len(r.sorted(func(s booking.Snapshot) bool { return s.ConfirmationNumber == confirmationNumber })) > 0, nil
}

// Save enforces the same constraints as the Postgres schema.
func (r *repo) Save(_ context.Context, res *booking.Reservation) (*booking.Reservation, error) {
	r.s.SaveCalls++
	if r.s.OnSave != nil {
		if err := r.s.OnSave(res); err != nil {
			return nil, err
		}
	}

	snap := res.Snapshot()
	for _, other := range r.s.rows {
		if other.ID == snap.ID {
			continue
		}
		if other.Reference == snap.Reference || other.ConfirmationNumber == snap.ConfirmationNumber {
			return nil, infra.NewRepoErr(infra.KindDuplicateKey, "booking identifier already exists")
		}
		if snap.Status != booking.StatusCancelled && other.Status != booking.StatusCancelled &&
			other.UserID == snap.UserID && other.HotelID == snap.HotelID &&
			booking.Overlaps(other.CheckIn, other.CheckOut, snap.CheckIn, snap.CheckOut) {
			return nil, infra.NewRepoErr(infra.KindExclusionViolation, "overlapping booking exists")
		}
	}

	if snap.ID == 0 {
		r.s.nextID++
		snap.ID = r.s.nextID
		snap.Version = 0
	} else {
		current, ok := r.s.rows[snap.ID]
		if !ok {
			return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
		}
		if current.Version != snap.Version {
			return nil, infra.NewRepoErr(infra.KindVersionConflict, "booking version mismatch")
		}
		snap.Version++
	}
	r.s.rows[snap.ID] = snap
	return booking.Reconstruct(snap), nil
}

type lockedReader struct {
	s *Store
}

func (l *lockedReader) with() (*repo, func()) {
	l.s.mu.Lock()
	return &repo{s: l.s}, l.s.mu.Unlock
}

func (l *lockedReader) FindByID(ctx context.Context, id int64) (*booking.Reservation, error) {
	r, unlock := l.with()
	defer unlock()
	return r.FindByID(ctx, id)
}

func (l *lockedReader) FindByReference(ctx context.Context, reference string) (*booking.Reservation, error) {
	r, unlock := l.with()
	defer unlock()
	return r.FindByReference(ctx, reference)
}

func (l *lockedReader) FindAll(ctx context.Context, page pagination.Request) (pagination.Page[*booking.Reservation], error) {
	r, unlock := l.with()
	defer unlock()
	return r.FindAll(ctx, page)
}

func (l *lockedReader) Count(ctx context.Context) (int64, error) {
	r, unlock := l.with()
	defer unlock()
	return r.Count(ctx)
}

func (l *lockedReader) FindByUser(ctx context.Context, userID int64) ([]*booking.Reservation, error) {
	r, unlock := l.with()
	defer unlock()
	return r.FindByUser(ctx, userID)
}

func (l *lockedReader) FindByHotel(ctx context.Context, hotelID int64) ([]*booking.Reservation, error) {
	r, unlock := l.with()
	defer unlock()
	return r.FindByHotel(ctx, hotelID)
}
