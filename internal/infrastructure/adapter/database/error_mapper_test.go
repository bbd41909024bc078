package database

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	m := NewErrorMapper()

	testCases := []struct {
		name string
		err  error
		want error
	}{
		{"domain error passes through", errs.ErrEditLocked, errs.ErrEditLocked},
		{"context", context.DeadlineExceeded, context.DeadlineExceeded},
		{"record not found", gorm.ErrRecordNotFound, errs.ErrNotFound},
		{"deadlock", errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), errs.ErrConcurrentUpdate},
		{"sqlite busy", errors.New("database is locked"), errs.ErrConcurrentUpdate},
		{"duplicate", errors.New("duplicate key value violates unique constraint"), errs.ErrConstraintViolation},
		{"check", errors.New("violates check constraint \"chk_products_voucher_quantity\""), errs.ErrConstraintViolation},
		{"refused", errors.New("dial tcp 127.0.0.1:5432: connection refused"), errs.ErrDatabaseConnection},
		{"closed", errors.New("sql: database is closed"), errs.ErrDatabaseConnection},
		{"anything else", errors.New("syntax error at or near"), errs.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, m.MapError(tc.err, "commit transaction"), tc.want)
		})
	}

	assert.NoError(t, m.MapError(nil, "ping"))
}

func TestErrorMapper_MapEntityNotFoundError(t *testing.T) {
	m := NewErrorMapper()

	assert.Equal(t, errs.ErrProductNotFound, m.MapEntityNotFoundError(gorm.ErrRecordNotFound, entity.KindProduct))
	assert.Equal(t, errs.ErrCategoryNotFound, m.MapEntityNotFoundError(gorm.ErrRecordNotFound, entity.KindCategory))
	assert.ErrorIs(t, m.MapEntityNotFoundError(errors.New("database is locked"), entity.KindProduct), errs.ErrConcurrentUpdate)
	assert.NoError(t, m.MapEntityNotFoundError(nil, entity.KindProduct))
}
