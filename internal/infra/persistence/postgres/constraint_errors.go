package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint classification for translating driver errors into domain errors.
// gorm surfaces sentinels for duplicate keys, foreign keys and check
// constraints; NOT NULL violations only arrive as postgres error text.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// isRowConstraintViolation reports whether an insert failed on a NOT NULL or
// CHECK constraint of the row itself, as opposed to a bad reference. Plan
// batches hit this when the model emits rows missing required columns.
func isRowConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	// SQLSTATE 23502 is not_null_violation, 23514 is check_violation.
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") ||
		strings.Contains(msg, "23502") ||
		strings.Contains(msg, "check constraint") ||
		strings.Contains(msg, "23514")
}
