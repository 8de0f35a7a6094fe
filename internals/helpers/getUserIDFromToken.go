package helper

import (
	"github.com/gofiber/fiber/v2"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/helpers/apperror"
)

// Nama locals yang diisi middleware AuthJWT
const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
	LocRawToken = "raw_token"
)

// GetUserIDFromToken: Unauthorized kalau belum login.
func GetUserIDFromToken(c *fiber.Ctx) (uint, error) {
	if id, ok := c.Locals(LocUserID).(uint); ok && id > 0 {
		return id, nil
	}
	return 0, apperror.New(apperror.KindUnauthorized, "not logged in")
}

func GetRoleFromToken(c *fiber.Ctx) (constants.Role, bool) {
	r, ok := c.Locals(LocUserRole).(constants.Role)
	return r, ok && r != ""
}
