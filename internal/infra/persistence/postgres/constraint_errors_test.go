package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		rowConstr  bool
	}{
		{
			name:   "duplicated key sentinel",
			err:    gorm.ErrDuplicatedKey,
			unique: true,
		},
		{
			name:       "wrapped foreign key sentinel",
			err:        errors.Wrap(gorm.ErrForeignKeyViolated, "create plans"),
			foreignKey: true,
		},
		{
			name:      "check constraint sentinel",
			err:       gorm.ErrCheckConstraintViolated,
			rowConstr: true,
		},
		{
			name:      "not null violation text",
			err:       errors.New(`ERROR: null value in column "plan_name" of relation "plans" violates not-null constraint (SQLSTATE 23502)`),
			rowConstr: true,
		},
		{
			name:      "check violation text",
			err:       errors.New(`ERROR: new row for relation "plans" violates check constraint "plans_monthly_cost_check" (SQLSTATE 23514)`),
			rowConstr: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
		},
		{
			name: "nil error",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.rowConstr, isRowConstraintViolation(tt.err))
		})
	}
}
