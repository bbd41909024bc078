package database

import (
	"context"
	"math/rand"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int // total attempts, including the first
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // Factor to add randomness to retry intervals (0.0-1.0)
}

// TransactionRetryConfig is tuned for re-running short transactions that lost a lock race
func TransactionRetryConfig(maxRetries int) RetryConfig {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return RetryConfig{
		MaxRetries:    maxRetries,
		RetryInterval: 10 * time.Millisecond,
		MaxInterval:   200 * time.Millisecond,
		JitterFactor:  0.5,
	}
}

// RetryOnError runs operation until it succeeds, fails with an error retryable
// rejects, or MaxRetries attempts have been made
func RetryOnError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	retryable func(error) bool,
	logger coreport.Logger,
) error {
	var err error
	attempts := config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Retryable database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": attempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts":    attempt + 1,
				"max_retries": attempts,
				"error":       ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts": attempts,
		"error":    err.Error(),
	})
	return err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
		backoff += jitter
	}

	return backoff
}

// isTransientError checks if a connection-level error is worth another attempt
func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "the database system is starting up") ||
		strings.Contains(errMsg, "eof")
}
