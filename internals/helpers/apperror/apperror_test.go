package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:            fiber.StatusNotFound,
		KindInactive:            fiber.StatusUnprocessableEntity,
		KindScheduleConflict:    fiber.StatusConflict,
		KindCapacityExceeded:    fiber.StatusConflict,
		KindUniquenessViolation: fiber.StatusConflict,
		KindValidation:          fiber.StatusUnprocessableEntity,
		KindForbidden:           fiber.StatusForbidden,
		Kind("SOMETHING_ELSE"):  fiber.StatusInternalServerError,
	}
	for k, want := range cases {
		assert.Equal(t, want, k.Status(), k)
	}
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("class", 7))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, Is(err, KindNotFound))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, "NOT_FOUND: class 7 not found", NotFound("class", 7).Error())
}

func TestFromStorage(t *testing.T) {
	assert.NoError(t, FromStorage(nil, KindDuplicateRecord, "dup"))

	typed := New(KindCapacityExceeded, "full")
	assert.Same(t, typed, FromStorage(typed, KindDuplicateRecord, "dup"))

	assert.Equal(t, KindNotFound, KindOf(FromStorage(gorm.ErrRecordNotFound, KindDuplicateRecord, "dup")))

	err := FromStorage(gorm.ErrDuplicatedKey, KindUniquenessViolation, "ic number taken")
	assert.Equal(t, KindUniquenessViolation, KindOf(err))
	assert.Contains(t, err.Error(), "ic number taken")

	err = FromStorage(&pgconn.PgError{Code: pgExclusionViolation}, KindDuplicateRecord, "dup")
	assert.Equal(t, KindScheduleConflict, KindOf(err))

	err = FromStorage(&pgconn.PgError{Code: pgForeignKeyViolation, Detail: "Key (x)=(1) is not present"}, KindDuplicateRecord, "dup")
	assert.Equal(t, KindForeignKeyViolation, KindOf(err))
	assert.Contains(t, err.Error(), "is not present")

	err = FromStorage(errors.New("UNIQUE constraint failed: students.student_ic_number"), KindUniquenessViolation, "ic")
	assert.Equal(t, KindUniquenessViolation, KindOf(err))

	assert.Equal(t, KindInternal, KindOf(FromStorage(errors.New("connection reset"), KindDuplicateRecord, "dup")))
}
