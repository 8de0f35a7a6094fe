package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/users/auth/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret           string
	BlacklistChecker func(ctx context.Context, rawToken string) (bool, error) // true = sudah logout
}

// AuthJWT memverifikasi Bearer token lalu mengisi locals user_id, userRole, raw_token.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		raw := helper.BearerToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "missing bearer token")
		}

		userID, role, _, err := service.ParseAccessToken(raw, secret)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid token")
		}

		if o.BlacklistChecker != nil {
			revoked, err := o.BlacklistChecker(c.UserContext(), raw)
			if err != nil {
				zap.L().Warn("blacklist check failed", zap.Error(err))
			} else if revoked {
				return helper.JsonError(c, fiber.StatusUnauthorized, "token revoked")
			}
		}

		c.Locals(helper.LocUserID, userID)
		c.Locals(helper.LocUserRole, constants.Role(role))
		c.Locals(helper.LocRawToken, raw)
		return c.Next()
	}
}
