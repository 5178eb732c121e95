package resilience

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/graderly/essay-engine/internal/errors"
)

// RetryConfig holds configuration for retry behavior
type RetryConfig struct {
	MaxAttempts     int              `json:"max_attempts"`
	InitialDelay    time.Duration    `json:"initial_delay"`
	MaxDelay        time.Duration    `json:"max_delay"`
	BackoffFactor   float64          `json:"backoff_factor"`
	JitterEnabled   bool             `json:"jitter_enabled"`
	RetryableErrors func(error) bool `json:"-"`
}

// DefaultRetryConfig returns sensible defaults for retry behavior
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      10 * time.Second,
		BackoffFactor: 2.0,
		JitterEnabled: true,
		RetryableErrors: func(err error) bool {
			return errors.IsRetryableError(err)
		},
	}
}

// NarrativeRetryConfig is tuned for narrative-generation calls: few attempts
// and short delays so a slow upstream cannot stall a grading request.
func NarrativeRetryConfig() RetryConfig {
	config := DefaultRetryConfig()
	config.MaxAttempts = 2
	config.InitialDelay = 250 * time.Millisecond
	config.MaxDelay = 2 * time.Second
	return config
}

// RetryableFunc represents a function that can be retried
type RetryableFunc func() error

// RetryWithConfig executes a function with retry logic using custom configuration
func RetryWithConfig(ctx context.Context, config RetryConfig, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if !config.RetryableErrors(err) {
			break
		}

		// No delay after the final attempt.
		if attempt == config.MaxAttempts-1 {
			break
		}

		delay := calculateDelay(config, attempt)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}

// Retry executes a function with retry logic using default configuration
func Retry(ctx context.Context, fn RetryableFunc) error {
	return RetryWithConfig(ctx, DefaultRetryConfig(), fn)
}

// calculateDelay computes the delay for the next retry attempt
func calculateDelay(config RetryConfig, attempt int) time.Duration {
	delay := time.Duration(float64(config.InitialDelay) * math.Pow(config.BackoffFactor, float64(attempt)))

	if delay > config.MaxDelay {
		delay = config.MaxDelay
	}

	// Jitter prevents synchronized retries against the same upstream.
	if config.JitterEnabled && delay >= 10 {
		jitter := time.Duration(rand.Int63n(int64(delay / 10)))
		delay += jitter
	}

	return delay
}

// IsRetryableHTTPStatus reports whether a response status should trigger a
// retry of the request.
func IsRetryableHTTPStatus(statusCode int) bool {
	switch statusCode {
	case 408, 429:
		return true
	case 500, 502, 503, 504:
		return true
	default:
		return false
	}
}
