package jobs

import (
	"context"
	"errors"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/indexing"

	"github.com/rs/zerolog"
)

// SyncJob bounds every synchronizer run by the configured timeout and logs its outcome.
type SyncJob struct {
	runner  indexing.SyncRunner
	timeout time.Duration
	logger  zerolog.Logger
}

var _ indexing.SyncRunner = (*SyncJob)(nil)

func NewSyncJob(runner indexing.SyncRunner, cfg config.SyncConfig, logger zerolog.Logger) *SyncJob {
	return &SyncJob{
		runner:  runner,
		timeout: cfg.Timeout,
		logger:  logger.With().Str("component", "sync_job").Logger(),
	}
}

func (j *SyncJob) Run(ctx context.Context) (indexing.Report, error) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	report, err := j.runner.Run(ctx)
	switch {
	case err == nil:
		j.logger.Info().
			Str("run_id", report.RunID.String()).
			Int("pages", report.Pages).
			Int("indexed", report.Indexed).
			Int("updated", report.Updated).
			Dur("elapsed", report.Elapsed).
			Msg("search sync completed")
	case errors.Is(err, indexing.ErrSyncInProgress):
		j.logger.Info().Msg("search sync skipped, a run is already in progress")
	default:
		j.logger.Error().
			Err(err).
			Str("run_id", report.RunID.String()).
			Int("processed", report.Processed).
			Strs("stack", errs.ExtractStackLines(err, 5)).
			Msg("search sync failed")
	}
	return report, err
}
