package apperror

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SQLSTATE yang dipetakan
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgExclusionViolation  = "23P01"
)

func sqlState(err error) (code, detail string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.Detail
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Detail
	}
	return "", ""
}

// FromStorage translates a record-store error. A unique-key collision is
// reported as dupKind with dupMsg since only the caller knows which key it
// was guarding. Already-typed errors pass through untouched.
func FromStorage(err error, dupKind Kind, dupMsg string) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Wrap(KindNotFound, err, "record not found")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Wrap(dupKind, err, dupMsg)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return Wrap(KindForeignKeyViolation, err, "referenced record does not exist")
	}

	code, detail := sqlState(err)
	switch code {
	case pgUniqueViolation:
		return Wrap(dupKind, err, dupMsg)
	case pgForeignKeyViolation:
		msg := "referenced record does not exist"
		if detail != "" {
			msg = detail
		}
		return Wrap(KindForeignKeyViolation, err, msg)
	case pgExclusionViolation:
		return Wrap(KindScheduleConflict, err, "class schedule overlaps another active class of this teacher")
	case pgCheckViolation:
		return Wrap(KindValidation, err, "value violates a table constraint")
	}

	// fallback driver lain (sqlite) yang tidak diterjemahkan gorm
	low := strings.ToLower(err.Error())
	switch {
	case strings.Contains(low, "unique constraint") || strings.Contains(low, "duplicate"):
		return Wrap(dupKind, err, dupMsg)
	case strings.Contains(low, "foreign key constraint"):
		return Wrap(KindForeignKeyViolation, err, "referenced record does not exist")
	}
	return Wrap(KindInternal, err, "storage error")
}
