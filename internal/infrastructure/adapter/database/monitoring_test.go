package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/catalog-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedStats sql.DBStats

func (s fixedStats) Stats() sql.DBStats { return sql.DBStats(s) }

func TestMetricsCollector_MeasureQuery(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Slow operations are reported", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(start).Once()
		clock.EXPECT().Since(start).Return(coreport.Duration(250 * time.Millisecond)).Once()
		log.EXPECT().Warn("Slow database operation detected", mock.MatchedBy(func(f map[string]any) bool {
			return f["operation"] == "transaction" && f["failed"] == true && f["request_id"] == "req-7"
		})).Once()

		ctx := coreport.WithRequestID(context.Background(), "req-7")
		metrics, err := NewMetricsCollector(log, clock).MeasureQuery(ctx, "transaction", func() (int64, error) {
			return 0, errors.New("boom")
		})

		require.Error(t, err)
		assert.True(t, metrics.Failed)
		assert.Equal(t, 250*time.Millisecond, metrics.Duration)
	})

	t.Run("Fast operations are silent", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(start).Once()
		clock.EXPECT().Since(start).Return(coreport.Duration(time.Millisecond)).Once()

		metrics, err := NewMetricsCollector(log, clock).WithSlowThreshold(time.Second).
			MeasureQuery(context.Background(), "transaction", func() (int64, error) { return 3, nil })

		require.NoError(t, err)
		assert.Equal(t, int64(3), metrics.RowsAffected)
	})
}

func TestConnectionPoolMonitor(t *testing.T) {
	t.Run("Warns when the pool is nearly exhausted", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		log.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()

		m := newConnectionPoolMonitor(func() (statsSource, error) {
			return fixedStats{MaxOpenConnections: 10, InUse: 9, Idle: 1, OpenConnections: 10}, nil
		}, log)

		require.NoError(t, m.collectMetrics())
		assert.Equal(t, 9, m.GetMetrics().InUse)
		assert.Equal(t, 10, m.GetMetrics().OpenConnections)
	})

	t.Run("Start fails when the pool is unavailable", func(t *testing.T) {
		m := newConnectionPoolMonitor(func() (statsSource, error) {
			return nil, errors.New("not connected")
		}, coremocks.NewMockLogger(t))

		assert.Error(t, m.Start(time.Second))
		assert.Equal(t, ConnectionPoolMetrics{}, m.GetMetrics())
	})

	t.Run("Stop is idempotent", func(t *testing.T) {
		m := newConnectionPoolMonitor(func() (statsSource, error) {
			return fixedStats{MaxOpenConnections: 10, InUse: 1}, nil
		}, coremocks.NewMockLogger(t))

		require.NoError(t, m.Start(time.Hour))
		m.Stop()
		m.Stop()
	})
}
