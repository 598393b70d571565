package postgres

import (
	domainerrors "tiffin/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return pgErrorCode(err) == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return pgErrorCode(err) == pgCheckViolation
}

// createError maps a failed insert onto a duplicate sentinel or a database error.
func createError(err, duplicate error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return duplicate
	case isForeignKeyConstraintViolation(err), isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
