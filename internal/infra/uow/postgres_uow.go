package uow

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"hotel-booking/internal/infra/observability"
	"hotel-booking/internal/infra/repository"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often a write transaction is replayed after a
// transient conflict. Backoff doubles per attempt with up to 20% jitter.
type RetryPolicy struct {
	MaxRetries  int
	BaseBackoff time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseBackoff: 100 * time.Millisecond}

func RetryPolicyFrom(cfg config.DBConfig) RetryPolicy {
	p := RetryPolicy{MaxRetries: cfg.TxMaxRetries, BaseBackoff: cfg.TxRetryBase}
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.BaseBackoff <= 0 {
		p.BaseBackoff = DefaultRetryPolicy.BaseBackoff
	}
	return p
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.BaseBackoff
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter)) // #nosec G404 -- jitter only
	}
	return wait
}

// PostgresUoW runs booking reads and writes against the primary store.
type PostgresUoW struct {
	pool   *pgxpool.Pool
	policy RetryPolicy
	logger zerolog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, policy RetryPolicy, logger zerolog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		policy: policy,
		logger: logger.With().Str("component", "uow").Logger(),
	}
}

var _ shared.UnitOfWork = (*PostgresUoW)(nil)

// Within runs fn in a READ COMMITTED transaction. Overlap checks rely on the
// scope advisory lock taken inside fn, not on the isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}

		reason, retryable := retryReason(err)
		if !retryable {
			return err
		}
		if attempt >= u.policy.MaxRetries {
			u.logger.Error().Int("attempts", attempt+1).Err(err).Msg("transaction failed after max retries")
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.policy.backoff(attempt)
		observability.ObserveTxRetry(reason)
		u.logger.Warn().
			Int("attempt", attempt+1).
			Str("reason", reason).
			Int64("wait_ms", wait.Milliseconds()).
			Err(err).
			Msg("retrying transaction")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// attempt owns one transaction so its rollback runs before any backoff wait.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer u.rollback(ctx, pgxTx)

	if err := fn(ctx, &pgTx{dbtx: pgxTx, logger: u.logger}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// WithinReadOnly gives fn one REPEATABLE READ snapshot so a count and a page agree.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.BookingReader) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer u.rollback(ctx, pgxTx)

	if err := fn(ctx, repository.NewBookingRepository(pgxTx, u.logger)); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

// Bookings reads outside any explicit transaction.
func (u *PostgresUoW) Bookings() shared.BookingReader {
	return repository.NewBookingRepository(u.pool, u.logger)
}

func (u *PostgresUoW) rollback(ctx context.Context, tx pgx.Tx) {
	// A cancelled ctx would leave the connection mid-transaction.
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		u.logger.Warn().Err(err).Msg("rollback failed")
	}
}

func retryReason(err error) (string, bool) {
	switch pgconv.ErrorCode(err) {
	case pgconv.CodeSerializationFailure:
		return "serialization", true
	case pgconv.CodeDeadlockDetected:
		return "deadlock", true
	default:
		return "", false
	}
}

type pgTx struct {
	dbtx   pgx.Tx
	logger zerolog.Logger

	bookingRepo shared.BookingRepository
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx, t.logger)
	}
	return t.bookingRepo
}
