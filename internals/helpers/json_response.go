// file: internals/helpers/json_response.go
package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"rumahmengaji_backend/internals/helpers/apperror"
)

/* ===============================
   Pagination (limit/offset)
=================================*/

type Pagination struct {
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	Total   int64 `json:"total"`
	Count   int   `json:"count"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

func BuildPagination(total int64, offset, limit, count int) Pagination {
	return Pagination{
		Limit:   limit,
		Offset:  offset,
		Total:   total,
		Count:   count,
		HasNext: int64(offset+count) < total,
		HasPrev: offset > 0,
	}
}

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

// JsonValidationError: khusus error validasi (422)
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success:   false,
		Message:   "validation failed",
		ErrorCode: string(apperror.KindValidation),
		Errors:    fieldErrors,
	})
}

// JsonValidatorError mengubah validator.ValidationErrors → map field → tag.
func JsonValidatorError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		out[field] = append(out[field], fe.Tag())
	}
	return JsonValidationError(c, out)
}

// JsonAppError menulis error service apa adanya (kind + message).
// Error yang bukan *apperror.Error dianggap 500 dan pesannya tidak dibocorkan.
func JsonAppError(c *fiber.Ctx, err error) error {
	var ae *apperror.Error
	if !errors.As(err, &ae) {
		zap.L().Error("unhandled error",
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals("reqid")),
			zap.Error(err))
		return JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
	status := ae.Kind.Status()
	msg := ae.Message
	if status >= 500 {
		zap.L().Error("internal error",
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals("reqid")),
			zap.Error(err))
		msg = "internal server error"
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   msg,
		ErrorCode: string(ae.Kind),
	})
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonList: list dengan pagination
func JsonList(c *fiber.Ctx, message string, data any, pagination *Pagination) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	body := fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	}
	if pagination != nil {
		body["pagination"] = pagination
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonOK: response sukses generic (GET detail, dsb)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "created"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonUpdated: response sukses update (PATCH/PUT)
func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "updated"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}
