package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "rumahmengaji_backend/internals/features/users/auth/route"
	authService "rumahmengaji_backend/internals/features/users/auth/service"
	userRoute "rumahmengaji_backend/internals/features/users/user/route"
)

func AuthPublicRoutes(public fiber.Router, db *gorm.DB, tokens *authService.TokenService, v *validator.Validate) {
	authRoute.AuthPublicRoutes(public, db, tokens, v)
}

func AuthRoutes(private fiber.Router, db *gorm.DB, tokens *authService.TokenService, v *validator.Validate) {
	authRoute.AuthRoutes(private, db, tokens, v)
}

func UserRoutes(private fiber.Router, db *gorm.DB, v *validator.Validate) {
	userRoute.UserRoutes(private, db, v)
}
