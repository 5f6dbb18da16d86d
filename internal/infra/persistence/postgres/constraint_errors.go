package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// Helper functions for PostgreSQL error checking. Errors are not translated by
// GORM so the constraint name stays in the message.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, pgUniqueViolation) ||
		strings.Contains(errMsg, "duplicate key")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), pgForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgNotNullViolation)
}

// violatesConstraint reports whether err names the given constraint.
func violatesConstraint(err error, constraint string) bool {
	return strings.Contains(err.Error(), constraint)
}
