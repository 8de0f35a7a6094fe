package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "rumahmengaji_backend/internals/features/users/auth/controller"
	"rumahmengaji_backend/internals/features/users/auth/service"
	"rumahmengaji_backend/internals/middlewares"
)

// AuthPublicRoutes: login (rate limited). Wajib dipasang sebelum group private
// karena keduanya berbagi prefix /api.
func AuthPublicRoutes(public fiber.Router, db *gorm.DB, tokens *service.TokenService, v *validator.Validate) {
	ctrl := authController.NewAuthController(db, tokens, v)
	public.Post("/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// AuthRoutes: logout & me butuh token.
func AuthRoutes(private fiber.Router, db *gorm.DB, tokens *service.TokenService, v *validator.Validate) {
	ctrl := authController.NewAuthController(db, tokens, v)
	private.Post("/auth/logout", ctrl.Logout)
	private.Get("/auth/me", ctrl.Me)
}
