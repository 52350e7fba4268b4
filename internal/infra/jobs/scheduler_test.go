//go:build unit

package jobs_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking/internal/infra/jobs"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/indexing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runnerFunc func(ctx context.Context) (indexing.Report, error)

func (f runnerFunc) Run(ctx context.Context) (indexing.Report, error) { return f(ctx) }

// =============================================================================
// SyncJob
// =============================================================================

func TestSyncJob_Run(t *testing.T) {
	tests := []struct {
		name          string
		timeout       time.Duration
		runner        runnerFunc
		expectedError error
	}{
		{
			name:    "success: report is passed through",
			timeout: time.Second,
			runner: func(ctx context.Context) (indexing.Report, error) {
				return indexing.Report{RunID: uuid.New(), Pages: 2, Indexed: 3}, nil
			},
		},
		{
			name:    "error: run exceeding the timeout is cancelled",
			timeout: 20 * time.Millisecond,
			runner: func(ctx context.Context) (indexing.Report, error) {
				<-ctx.Done()
				return indexing.Report{}, &indexing.SyncFailure{Err: ctx.Err()}
			},
			expectedError: context.DeadlineExceeded,
		},
		{
			name:    "error: concurrent run is reported",
			timeout: time.Second,
			runner: func(ctx context.Context) (indexing.Report, error) {
				return indexing.Report{}, indexing.ErrSyncInProgress
			},
			expectedError: indexing.ErrSyncInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := jobs.NewSyncJob(tt.runner, config.SyncConfig{Timeout: tt.timeout}, zerolog.Nop())

			report, err := job.Run(context.Background())

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, report.Pages)
			assert.Equal(t, 3, report.Indexed)
		})
	}
}

// =============================================================================
// Scheduler
// =============================================================================

func TestScheduler_RunsPeriodically(t *testing.T) {
	var calls atomic.Int32
	runner := runnerFunc(func(ctx context.Context) (indexing.Report, error) {
		calls.Add(1)
		return indexing.Report{}, nil
	})
	cfg := config.SyncConfig{Interval: 20 * time.Millisecond, Timeout: time.Second}

	sched, err := jobs.NewScheduler(jobs.NewSyncJob(runner, cfg, zerolog.Nop()), cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, sched.Start())
	assert.Equal(t, 1, sched.JobCount())

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, sched.Shutdown())
}

func TestScheduler_ShutdownCancelsRunInFlight(t *testing.T) {
	started := make(chan struct{})
	var cancelled atomic.Bool
	runner := runnerFunc(func(ctx context.Context) (indexing.Report, error) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		cancelled.Store(true)
		return indexing.Report{}, ctx.Err()
	})
	cfg := config.SyncConfig{Interval: 10 * time.Millisecond, Timeout: time.Minute}

	sched, err := jobs.NewScheduler(jobs.NewSyncJob(runner, cfg, zerolog.Nop()), cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, sched.Start())

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("job never started")
	}
	require.NoError(t, sched.Shutdown())
	assert.True(t, cancelled.Load())
}

func TestScheduler_DisabledInterval(t *testing.T) {
	var calls atomic.Int32
	runner := runnerFunc(func(ctx context.Context) (indexing.Report, error) {
		calls.Add(1)
		return indexing.Report{}, nil
	})
	cfg := config.SyncConfig{Interval: 0}

	sched, err := jobs.NewScheduler(jobs.NewSyncJob(runner, cfg, zerolog.Nop()), cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, sched.Start())
	assert.Zero(t, sched.JobCount())

	require.NoError(t, sched.RunOnce(context.Background()))
	assert.Equal(t, int32(1), calls.Load())
	require.NoError(t, sched.Shutdown())
}
