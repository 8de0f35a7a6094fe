package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/materials/videos/controller"
	authMiddleware "rumahmengaji_backend/internals/middlewares/auth"
)

func VideoRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewVideoController(db, v)

	g := r.Group("/videos")
	g.Post("/", authMiddleware.Require(constants.CapVideosManage), ctl.Create)
	g.Get("/", authMiddleware.Require(constants.CapVideosView), ctl.List)
	g.Patch("/:id/deactivate", authMiddleware.Require(constants.CapVideosManage), ctl.Deactivate)
}
