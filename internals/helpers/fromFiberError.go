package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"rumahmengaji_backend/internals/helpers/apperror"
)

// FromFiberError dipasang sebagai fiber.Config.ErrorHandler: error yang lolos
// dari handler (404 route, body terlalu besar, panic yang di-recover) tetap
// keluar dengan bentuk JSON yang sama.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	var ae *apperror.Error
	if errors.As(err, &ae) {
		return JsonAppError(c, err)
	}
	zap.L().Error("unhandled error",
		zap.String("path", c.Path()),
		zap.Any("request_id", c.Locals("reqid")),
		zap.Error(err))
	return JsonError(c, fiber.StatusInternalServerError, "internal server error")
}
