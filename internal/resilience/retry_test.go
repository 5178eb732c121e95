package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graderly/essay-engine/internal/errors"
)

func fastConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:     3,
		InitialDelay:    time.Millisecond,
		MaxDelay:        5 * time.Millisecond,
		BackoffFactor:   2.0,
		RetryableErrors: errors.IsRetryableError,
	}
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	err := RetryWithConfig(context.Background(), fastConfig(), func() error {
		attempts++
		if attempts < 3 {
			return errors.NewTimeoutError("upstream timeout", nil)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryStopsOnNonRetryableError(t *testing.T) {
	attempts := 0
	err := RetryWithConfig(context.Background(), fastConfig(), func() error {
		attempts++
		return errors.NewValidationError("bad input", nil)
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := RetryWithConfig(context.Background(), fastConfig(), func() error {
		attempts++
		return errors.NewTimeoutError("always failing", nil)
	})

	assert.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithConfig(ctx, fastConfig(), func() error {
		return errors.NewTimeoutError("never reached", nil)
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryableHTTPStatus(t *testing.T) {
	tests := []struct {
		status    int
		retryable bool
	}{
		{200, false},
		{400, false},
		{404, false},
		{408, true},
		{429, true},
		{500, true},
		{502, true},
		{503, true},
		{504, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.retryable, IsRetryableHTTPStatus(tt.status), "status %d", tt.status)
	}
}

func TestNarrativeRetryConfigBounds(t *testing.T) {
	config := NarrativeRetryConfig()
	assert.Equal(t, 2, config.MaxAttempts)
	assert.LessOrEqual(t, config.MaxDelay, 2*time.Second)
}
