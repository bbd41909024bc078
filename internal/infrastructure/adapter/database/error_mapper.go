package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	domainErr "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps errors raised outside the repositories (begin, commit, ping)
// to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Already a domain error
	if domainErr.ErrorCode(err) != domainErr.CodeInternalServer {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "could not serialize") ||
		strings.Contains(errMsg, "database is locked") ||
		strings.Contains(errMsg, "lock timeout"):
		return fmt.Errorf("%w: %s", domainErr.ErrConcurrentUpdate, operation)

	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return fmt.Errorf("%w: %s", domainErr.ErrConstraintViolation, operation)

	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrConstraintViolation

	case isTransientError(err) ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "sql: database is closed"):
		return fmt.Errorf("%w: %s failed", domainErr.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrInternalServer, operation, err.Error())
	}
}

// MapEntityNotFoundError maps a missing row to the not-found error of kind
func (m *ErrorMapper) MapEntityNotFoundError(err error, kind entity.EntityKind) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch kind {
		case entity.KindProduct:
			return domainErr.ErrProductNotFound
		case entity.KindCategory:
			return domainErr.ErrCategoryNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, kind.String())
}
