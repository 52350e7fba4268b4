package indexing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/infra/observability"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pagination"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	DefaultBatchSize  = 100
	existsConcurrency = 8
)

var (
	ErrSyncFailure    = errs.ErrSyncFailure
	ErrSyncInProgress = errs.ErrSyncInProgress
)

type Report struct {
	RunID     uuid.UUID     `json:"runId"`
	Pages     int           `json:"pages"`
	Processed int           `json:"processed"`
	Indexed   int           `json:"indexed"`
	Updated   int           `json:"updated"`
	Elapsed   time.Duration `json:"elapsed"`
}

// SyncFailure aborts a run. Pages written before Page stay committed.
type SyncFailure struct {
	Page     int
	Progress Report
	Err      error
}

func (e *SyncFailure) Error() string {
	return fmt.Sprintf("search sync failed at page %d after %d documents: %v", e.Page, e.Progress.Processed, e.Err)
}

func (e *SyncFailure) Unwrap() error {
	return e.Err
}

func (e *SyncFailure) Is(target error) bool {
	return target == ErrSyncFailure
}

// SyncRunner runs one full reconciliation pass.
type SyncRunner interface {
	Run(ctx context.Context) (Report, error)
}

var _ SyncRunner = (*Synchronizer)(nil)

type SyncOptions struct {
	BatchSize int
	// PagesPerSecond paces page reads; zero or less disables pacing.
	PagesPerSecond float64
}

// Synchronizer rebuilds the search index from the primary store, one page at a time.
type Synchronizer struct {
	reads     shared.BookingReader
	index     shared.SearchIndex
	hotels    shared.HotelDirectory
	clock     clock.Clock
	logger    zerolog.Logger
	batchSize int
	limiter   *rate.Limiter
	running   sync.Mutex
}

func NewSynchronizer(
	uow shared.UnitOfWork,
	index shared.SearchIndex,
	hotels shared.HotelDirectory,
	clk clock.Clock,
	logger zerolog.Logger,
	opts SyncOptions,
) *Synchronizer {
	batch := opts.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	limit := rate.Inf
	if opts.PagesPerSecond > 0 && !math.IsInf(opts.PagesPerSecond, 1) {
		limit = rate.Limit(opts.PagesPerSecond)
	}
	return &Synchronizer{
		reads:     uow.Bookings(),
		index:     index,
		hotels:    hotels,
		clock:     clk,
		logger:    logger.With().Str("component", "synchronizer").Logger(),
		batchSize: batch,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// Run reconciles every booking into the search index. A second concurrent call
// returns ErrSyncInProgress.
func (s *Synchronizer) Run(ctx context.Context) (report Report, err error) {
	if !s.running.TryLock() {
		return Report{}, ErrSyncInProgress
	}
	defer s.running.Unlock()

	started := time.Now()
	report.RunID = uuid.New()
	log := s.logger.With().Str("run_id", report.RunID.String()).Logger()
	defer func() {
		report.Elapsed = time.Since(started)
		observability.ObserveSync(report.Indexed, report.Updated, report.Elapsed, err)
		var failure *SyncFailure
		if errors.As(err, &failure) {
			failure.Progress = report
		}
	}()

	total, err := s.reads.Count(ctx)
	if err != nil {
		return report, &SyncFailure{Page: 0, Err: errs.Wrap(err, "count bookings")}
	}
	if total == 0 {
		log.Info().Msg("no bookings to index")
		return report, nil
	}
	log.Info().Int64("total", total).Int("batch_size", s.batchSize).Msg("search sync started")

	now := s.clock.Now()
	for page := 0; ; page++ {
		if err := ctx.Err(); err != nil {
			return report, &SyncFailure{Page: page, Err: err}
		}
		if err := s.limiter.Wait(ctx); err != nil {
			return report, &SyncFailure{Page: page, Err: err}
		}

		p, err := s.reads.FindAll(ctx, pagination.Request{Number: page, Size: s.batchSize})
		if err != nil {
			return report, &SyncFailure{Page: page, Err: errs.Wrapf(err, "read page %d", page)}
		}
		report.Pages++

		if p.Len() > 0 {
			docs, fresh, err := s.processPage(ctx, p.Items, now)
			if err != nil {
				return report, &SyncFailure{Page: page, Err: err}
			}
			if err := s.index.SaveAll(ctx, docs); err != nil {
				return report, &SyncFailure{Page: page, Err: errs.Wrapf(err, "write page %d", page)}
			}
			report.Processed += len(docs)
			report.Indexed += fresh
			report.Updated += len(docs) - fresh
		}

		log.Info().
			Int("page", page).
			Int("processed", report.Processed).
			Int64("total", total).
			Msg("search sync progress")

		if !p.HasNext {
			break
		}
	}

	log.Info().
		Int("indexed", report.Indexed).
		Int("updated", report.Updated).
		Int("pages", report.Pages).
		Dur("elapsed", time.Since(started)).
		Msg("search sync completed")
	return report, nil
}

// processPage maps one page, resolving hotels and classifying new vs existing documents concurrently.
func (s *Synchronizer) processPage(ctx context.Context, items []*booking.Reservation, now time.Time) ([]search.Document, int, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(existsConcurrency + 1)

	var hotels map[int64]search.HotelInfo
	g.Go(func() error {
		ids := make([]int64, 0, len(items))
		for _, r := range items {
			ids = append(ids, r.HotelID())
		}
		var err error
		hotels, err = s.hotels.Lookup(gctx, ids)
		return errs.Wrap(err, "lookup hotels")
	})

	exists := make([]bool, len(items))
	for i, r := range items {
		g.Go(func() error {
			ok, err := s.index.ExistsByID(gctx, r.ID())
			if err != nil {
				return errs.Wrapf(err, "classify booking %d", r.ID())
			}
			exists[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	docs := make([]search.Document, 0, len(items))
	fresh := 0
	for i, r := range items {
		docs = append(docs, search.Map(r, hotels[r.HotelID()], now))
		if !exists[i] {
			fresh++
		}
	}
	return docs, fresh, nil
}
