package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// BearerToken: token dari header "Authorization: Bearer <token>", "" kalau tidak ada.
func BearerToken(c *fiber.Ctx) string {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	const p = "bearer "
	if len(authz) <= len(p) || !strings.EqualFold(authz[:len(p)], p) {
		return ""
	}
	return strings.TrimSpace(authz[len(p):])
}

// RawToken: token yang sudah diverifikasi AuthJWT (dipakai logout).
func RawToken(c *fiber.Ctx) string {
	v, _ := c.Locals(LocRawToken).(string)
	return v
}
