package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/catalog-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, ParseGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, ParseGormLogLevel("ERROR"))
	assert.Equal(t, gormlogger.Info, ParseGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, ParseGormLogLevel("whatever"))
}

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	query := func() (string, int64) {
		return `UPDATE "products" SET "voucher_quantity"=voucher_quantity - 1 WHERE id = 5`, 1
	}
	ctx := coreport.WithRequestID(context.Background(), "req-1")

	newLogger := func(t *testing.T, elapsed time.Duration, level string) (*coremocks.MockLogger, *DatabaseLogger) {
		core := coremocks.NewMockLogger(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(coreport.Duration(elapsed)).Maybe()
		return core, NewDatabaseLogger(core, clock, level).(*DatabaseLogger)
	}

	t.Run("Errors are logged with the statement", func(t *testing.T) {
		core, l := newLogger(t, time.Millisecond, "warn")
		core.EXPECT().Error("SQL Error", mock.MatchedBy(func(f map[string]any) bool {
			return f["type"] == "UPDATE" && f["table"] == "products" &&
				f["request_id"] == "req-1" && f["error"] == "boom"
		})).Once()

		l.Trace(ctx, begin, query, errors.New("boom"))
	})

	t.Run("Missing rows are not errors", func(t *testing.T) {
		_, l := newLogger(t, time.Millisecond, "warn")

		l.Trace(ctx, begin, query, gorm.ErrRecordNotFound)
	})

	t.Run("Slow statements are warned about", func(t *testing.T) {
		core, l := newLogger(t, time.Second, "warn")
		core.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		l.Trace(ctx, begin, query, nil)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		_, l := newLogger(t, time.Second, "silent")

		l.Trace(ctx, begin, query, errors.New("boom"))
	})

	t.Run("Info level traces every statement at debug", func(t *testing.T) {
		core, l := newLogger(t, time.Millisecond, "info")
		core.EXPECT().Debug("SQL Query", mock.Anything).Once()

		l.Trace(ctx, begin, query, nil)
	})
}

func TestExtractTableName(t *testing.T) {
	testCases := map[string]string{
		`SELECT * FROM "products" WHERE id = 1`:                         "products",
		`INSERT INTO "vouchers" ("product_id") VALUES (1)`:              "vouchers",
		`UPDATE categories SET editing_user_id=NULL`:                    "categories",
		`DELETE FROM product_categories WHERE product_id = 1`:           "product_categories",
		`SELECT count(*) FROM vouchers WHERE product_id = 1 AND user_id`: "vouchers",
		`PRAGMA foreign_keys`:                                           "",
	}

	for sql, want := range testCases {
		assert.Equal(t, want, extractTableName(sql), sql)
	}
	assert.Equal(t, "DELETE", extractQueryType(" delete from vouchers"))
	assert.Equal(t, "", extractQueryType("PRAGMA foreign_keys"))
}
