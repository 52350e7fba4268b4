package jobs

import (
	"context"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

const resyncJobName = "search-resync"

// Scheduler triggers the sync job on a fixed interval. Overlapping ticks are
// rescheduled rather than queued.
type Scheduler struct {
	sched  gocron.Scheduler
	job    *SyncJob
	cfg    config.SyncConfig
	logger zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewScheduler(job *SyncJob, cfg config.SyncConfig, logger zerolog.Logger) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, errs.Wrap(err, "failed to create scheduler")
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		sched:  sched,
		job:    job,
		cfg:    cfg,
		logger: logger.With().Str("component", "scheduler").Logger(),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Start registers the periodic resync and starts the scheduler. A non-positive
// interval leaves the scheduler idle.
func (s *Scheduler) Start() error {
	if s.cfg.Interval <= 0 {
		s.logger.Info().Msg("periodic search sync disabled")
		return nil
	}

	j, err := s.sched.NewJob(
		gocron.DurationJob(s.cfg.Interval),
		gocron.NewTask(func() {
			_, _ = s.job.Run(s.ctx)
		}),
		gocron.WithName(resyncJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return errs.Wrap(err, "failed to register resync job")
	}

	s.sched.Start()
	s.logger.Info().
		Str("job_id", j.ID().String()).
		Dur("interval", s.cfg.Interval).
		Msg("periodic search sync scheduled")
	return nil
}

// Shutdown cancels a run in flight and waits for the scheduler to stop.
func (s *Scheduler) Shutdown() error {
	s.cancel()
	return errs.Wrap(s.sched.Shutdown(), "failed to stop scheduler")
}

// RunOnce runs the job immediately, outside the schedule.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	_, err := s.job.Run(ctx)
	return err
}

func (s *Scheduler) JobCount() int {
	return len(s.sched.Jobs())
}
