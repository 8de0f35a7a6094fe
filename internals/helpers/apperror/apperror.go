// Package apperror holds the error kinds every service returns to callers.
package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind string

const (
	KindNotFound            Kind = "NOT_FOUND"
	KindInactive            Kind = "INACTIVE"
	KindOwnershipMismatch   Kind = "OWNERSHIP_MISMATCH"
	KindUniquenessViolation Kind = "UNIQUENESS_VIOLATION"
	KindForeignKeyViolation Kind = "FOREIGN_KEY_VIOLATION"
	KindScheduleConflict    Kind = "SCHEDULE_CONFLICT"
	KindCapacityExceeded    Kind = "CAPACITY_EXCEEDED"
	KindDuplicateRecord     Kind = "DUPLICATE_RECORD"
	KindNotEnrolled         Kind = "NOT_ENROLLED"
	KindInvalidPrice        Kind = "INVALID_PRICE"
	KindUnexpectedPrice     Kind = "UNEXPECTED_PRICE"
	KindValidation          Kind = "VALIDATION_ERROR"
	KindUnauthorized        Kind = "UNAUTHORIZED"
	KindForbidden           Kind = "FORBIDDEN"
	KindInternal            Kind = "INTERNAL_ERROR"
)

var statusByKind = map[Kind]int{
	KindNotFound:            fiber.StatusNotFound,
	KindInactive:            fiber.StatusUnprocessableEntity,
	KindOwnershipMismatch:   fiber.StatusUnprocessableEntity,
	KindUniquenessViolation: fiber.StatusConflict,
	KindForeignKeyViolation: fiber.StatusConflict,
	KindScheduleConflict:    fiber.StatusConflict,
	KindCapacityExceeded:    fiber.StatusConflict,
	KindDuplicateRecord:     fiber.StatusConflict,
	KindNotEnrolled:         fiber.StatusUnprocessableEntity,
	KindInvalidPrice:        fiber.StatusUnprocessableEntity,
	KindUnexpectedPrice:     fiber.StatusUnprocessableEntity,
	KindValidation:          fiber.StatusUnprocessableEntity,
	KindUnauthorized:        fiber.StatusUnauthorized,
	KindForbidden:           fiber.StatusForbidden,
	KindInternal:            fiber.StatusInternalServerError,
}

// Status returns the HTTP status a kind is surfaced with.
func (k Kind) Status() int {
	if s, ok := statusByKind[k]; ok {
		return s
	}
	return fiber.StatusInternalServerError
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func NotFound(entity string, id uint) *Error {
	return Newf(KindNotFound, "%s %d not found", entity, id)
}

func Inactive(entity string, id uint) *Error {
	return Newf(KindInactive, "%s %d is not active", entity, id)
}

func Validation(msg string) *Error { return New(KindValidation, msg) }

// KindOf returns the kind carried by err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
