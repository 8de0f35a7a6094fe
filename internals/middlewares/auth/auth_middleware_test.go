package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/users/auth/service"
	userModel "rumahmengaji_backend/internals/features/users/user/model"
)

const secret = "middleware-secret"

func newApp(revoked map[string]bool) *fiber.App {
	app := fiber.New()
	api := app.Group("/api", AuthJWT(AuthJWTOpts{
		Secret: secret,
		BlacklistChecker: func(_ context.Context, raw string) (bool, error) {
			return revoked[raw], nil
		},
	}))
	api.Get("/payments", Require(constants.CapPaymentsView), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenFor(t *testing.T, role constants.Role) string {
	t.Helper()
	raw, _, err := service.NewTokenService(nil, secret, time.Hour).Issue(&userModel.UserModel{ID: 7, Role: role})
	require.NoError(t, err)
	return raw
}

func call(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/api/payments", nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthJWTAndRequire(t *testing.T) {
	manager := tokenFor(t, constants.RoleCenterManager)
	student := tokenFor(t, constants.RoleStudent)
	loggedOut := tokenFor(t, constants.RoleAdministrator)

	app := newApp(map[string]bool{loggedOut: true})

	assert.Equal(t, fiber.StatusOK, call(t, app, manager))
	assert.Equal(t, fiber.StatusForbidden, call(t, app, student))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, ""))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, "not-a-jwt"))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, loggedOut))
}

func TestAuthJWTRequiresSecret(t *testing.T) {
	assert.Panics(t, func() { AuthJWT(AuthJWTOpts{}) })
}
