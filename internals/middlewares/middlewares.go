package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"rumahmengaji_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global sesuai urutan.
func SetupMiddlewares(app *fiber.App, origins []string) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(5 * time.Second))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(origins))
	app.Use(GlobalRateLimiter())
}
