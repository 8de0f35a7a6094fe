package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"rumahmengaji_backend/internals/constants"
	helper "rumahmengaji_backend/internals/helpers"
)

// Require: role dari token harus punya capability cap (lihat Role.Can).
func Require(cap constants.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := helper.GetRoleFromToken(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "missing role information")
		}
		if !role.Can(cap) {
			zap.L().Debug("capability denied",
				zap.String("role", string(role)),
				zap.String("capability", string(cap)),
				zap.String("path", c.Path()))
			return helper.JsonError(c, fiber.StatusForbidden, constants.CapabilityError(role, cap))
		}
		return c.Next()
	}
}
