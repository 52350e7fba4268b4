//go:build unit

package uow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryReason(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		reason    string
		retryable bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgconv.CodeSerializationFailure}, reason: "serialization", retryable: true},
		{name: "deadlock wrapped", err: fmt.Errorf("save: %w", &pgconn.PgError{Code: pgconv.CodeDeadlockDetected}), reason: "deadlock", retryable: true},
		{name: "unique violation", err: &pgconn.PgError{Code: pgconv.CodeUniqueViolation}},
		{name: "exclusion violation", err: &pgconn.PgError{Code: pgconv.CodeExclusionViolation}},
		{name: "plain error", err: errors.New("boom")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reason, ok := retryReason(tc.err)
			assert.Equal(t, tc.retryable, ok)
			assert.Equal(t, tc.reason, reason)
		})
	}
}

func TestRetryPolicy_Backoff(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, BaseBackoff: 100 * time.Millisecond}

	for attempt, base := range []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond} {
		got := p.backoff(attempt)
		assert.GreaterOrEqual(t, got, base, "attempt %d", attempt)
		assert.Less(t, got, base+base/5, "attempt %d", attempt)
	}
}

func TestRetryPolicyFrom(t *testing.T) {
	assert.Equal(t, RetryPolicy{MaxRetries: 5, BaseBackoff: 50 * time.Millisecond},
		RetryPolicyFrom(config.DBConfig{TxMaxRetries: 5, TxRetryBase: 50 * time.Millisecond}))

	assert.Equal(t, RetryPolicy{MaxRetries: 0, BaseBackoff: DefaultRetryPolicy.BaseBackoff},
		RetryPolicyFrom(config.DBConfig{TxMaxRetries: -1}))
}
