package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ForeignKeyError   ErrorType = "foreign_key"
	CheckError        ErrorType = "check"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgNotNullViolation     = "23502"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// ErrorClassifier provides methods to classify database errors.
// PostgreSQL errors are matched on SQLSTATE; SQLite errors on their message.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	switch {
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsForeignKeyError(err):
		return ForeignKeyError
	case c.IsCheckError(err):
		return CheckError
	case c.IsLockError(err):
		return LockError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	}

	return ""
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ViolatesUnique reports whether err is a unique violation of the named index.
// SQLite does not report index names, so the indexed columns are matched instead
// as "table.column" pairs.
func (c *ErrorClassifier) ViolatesUnique(err error, index string, columns ...string) bool {
	if !c.IsDuplicateKeyError(err) {
		return false
	}
	if pgErr, ok := asPgError(err); ok {
		return pgErr.ConstraintName == index
	}
	msg := err.Error()
	if strings.Contains(msg, index) {
		return true
	}
	i := strings.Index(msg, "UNIQUE constraint failed:")
	if i < 0 || len(columns) == 0 {
		return false
	}
	failed := strings.Split(strings.TrimSpace(msg[i+len("UNIQUE constraint failed:"):]), ",")
	if len(failed) != len(columns) {
		return false
	}
	for j, col := range failed {
		if strings.TrimSpace(col) != columns[j] {
			return false
		}
	}
	return true
}

// IsForeignKeyError checks if a referenced row is missing or still referenced
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgForeignKeyViolation
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed") ||
		strings.Contains(err.Error(), "violates foreign key constraint")
}

// IsCheckError checks if a CHECK constraint rejected the row
func (c *ErrorClassifier) IsCheckError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgCheckViolation
	}
	return strings.Contains(err.Error(), "CHECK constraint failed") ||
		strings.Contains(err.Error(), "violates check constraint")
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}
	return strings.Contains(err.Error(), "connection reset") ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "EOF") ||
		strings.Contains(err.Error(), "server closed") ||
		strings.Contains(err.Error(), "broken pipe")
}

// IsLockError checks if the transaction lost a lock race and may be re-run
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgDeadlockDetected ||
			pgErr.Code == pgSerializationFailure ||
			pgErr.Code == pgLockNotAvailable
	}
	return strings.Contains(err.Error(), "deadlock") ||
		strings.Contains(err.Error(), "could not serialize access") ||
		strings.Contains(err.Error(), "database is locked") ||
		strings.Contains(err.Error(), "database table is locked")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "connection") ||
		strings.Contains(err.Error(), "dial") ||
		strings.Contains(err.Error(), "network") ||
		c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := asPgError(err); ok {
		return strings.HasPrefix(pgErr.Code, "23") || pgErr.Code == pgNotNullViolation
	}
	return strings.Contains(err.Error(), "constraint") ||
		strings.Contains(err.Error(), "violates") ||
		strings.Contains(err.Error(), "NOT NULL") ||
		c.IsDuplicateKeyError(err)
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled")
}

// mapDatabaseError converts a gorm or driver error into a domain error.
// notFound is returned for gorm.ErrRecordNotFound.
func mapDatabaseError(c *ErrorClassifier, err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case isContextError(err):
		return err
	case c.IsLockError(err):
		return fmt.Errorf("%w: %s", errs.ErrConcurrentUpdate, err.Error())
	case c.IsConstraintError(err):
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}
