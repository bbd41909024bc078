package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
)

// DefaultSlowThreshold is the duration above which a transaction is reported as slow
const DefaultSlowThreshold = 100 * time.Millisecond

// QueryMetrics holds metrics about a database operation
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
	ErrorMessage string
}

// MetricsCollector collects database operation metrics
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: DefaultSlowThreshold,
	}
}

// WithSlowThreshold returns a copy reporting operations slower than threshold
func (c *MetricsCollector) WithSlowThreshold(threshold time.Duration) *MetricsCollector {
	cp := *c
	cp.slowThreshold = threshold
	return &cp
}

// MeasureQuery measures the execution time of a database operation
func (c *MetricsCollector) MeasureQuery(ctx context.Context, operation string, fn func() (int64, error)) (*QueryMetrics, error) {
	start := c.timeProvider.Now()

	rowsAffected, err := fn()

	metrics := &QueryMetrics{
		Operation:    operation,
		Duration:     c.timeProvider.Since(start).Std(),
		RowsAffected: rowsAffected,
		Failed:       err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if c.slowThreshold > 0 && metrics.Duration > c.slowThreshold {
		fields := map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"rows_affected": rowsAffected,
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		}
		if id := coreport.RequestIDFrom(ctx); id != "" {
			fields["request_id"] = id
		}
		c.logger.Warn("Slow database operation detected", fields)
	}

	return metrics, err
}
