// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/configs"
	authService "rumahmengaji_backend/internals/features/users/auth/service"
	helper "rumahmengaji_backend/internals/helpers"
	authMiddleware "rumahmengaji_backend/internals/middlewares/auth"
	routeDetails "rumahmengaji_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	v := helper.NewValidator()
	tokens := authService.NewTokenService(db, configs.JWTSecret, configs.JWTTTL)

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → hanya login. Dipasang duluan: group private di bawah memakai
	// prefix yang sama dan middleware-nya berlaku untuk route setelahnya.
	zap.L().Info("setting up PUBLIC group")
	public := app.Group("/api")
	routeDetails.AuthPublicRoutes(public, db, tokens, v)

	// PRIVATE → JWT wajib + cek blacklist (logout)
	zap.L().Info("setting up PRIVATE group")
	private := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:           configs.JWTSecret,
			BlacklistChecker: tokens.IsRevoked,
		}),
	)

	// ===================== MOUNT ROUTES =====================

	zap.L().Info("mounting Auth & User routes")
	routeDetails.AuthRoutes(private, db, tokens, v)
	routeDetails.UserRoutes(private, db, v)

	zap.L().Info("mounting Lembaga routes")
	routeDetails.LembagaRoutes(private, db, v)

	zap.L().Info("mounting School routes")
	routeDetails.SchoolRoutes(private, db, v)

	zap.L().Info("mounting Finance routes")
	routeDetails.FinanceRoutes(private, db, v)

	zap.L().Info("mounting Materials routes")
	routeDetails.MaterialsRoutes(private, db, v)
}
