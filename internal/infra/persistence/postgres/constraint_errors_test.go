package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	t.Parallel()

	wrap := func(code string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, isUniqueConstraintViolation(wrap("23505")))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrap("23503")))

	assert.True(t, isForeignKeyConstraintViolation(wrap("23503")))
	assert.True(t, isNotNullConstraintViolation(wrap("23502")))
	assert.True(t, isCheckConstraintViolation(wrap("23514")))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))

	assert.False(t, isCheckConstraintViolation(fmt.Errorf("plain failure")))
}
