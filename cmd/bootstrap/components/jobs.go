package components

import (
	"context"

	"hotel-booking/internal/infra/jobs"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/indexing"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		fx.Annotate(
			NewSyncJob,
			fx.As(fx.Self()),
			fx.As(new(indexing.SyncRunner)),
		),
		NewScheduler,
	),
	fx.Invoke(registerScheduler),
)

func NewSyncJob(sync *indexing.Synchronizer, cfg config.Config, logger zerolog.Logger) *jobs.SyncJob {
	return jobs.NewSyncJob(sync, cfg.Sync, logger)
}

func NewScheduler(job *jobs.SyncJob, cfg config.Config, logger zerolog.Logger) (*jobs.Scheduler, error) {
	return jobs.NewScheduler(job, cfg.Sync, logger)
}

// registerScheduler starts the periodic resync with the app and, when enabled,
// kicks off a full sync in the background so startup does not wait on it.
func registerScheduler(lc fx.Lifecycle, sched *jobs.Scheduler, cfg config.Config, logger zerolog.Logger) {
	runCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if cfg.Sync.OnStartup {
				go func() {
					if err := sched.RunOnce(runCtx); err != nil {
						logger.Warn().Err(err).Msg("startup search sync did not complete")
					}
				}()
			}
			return sched.Start()
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return sched.Shutdown()
		},
	})
}
