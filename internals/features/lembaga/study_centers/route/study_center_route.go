package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/lembaga/study_centers/controller"
	authMiddleware "rumahmengaji_backend/internals/middlewares/auth"
)

func StudyCenterRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewStudyCenterController(db, v)

	g := r.Group("/study-centers")
	g.Post("/", authMiddleware.Require(constants.CapCentersManage), ctl.Create)
	g.Get("/", authMiddleware.Require(constants.CapCentersView), ctl.List)
	g.Patch("/:id/deactivate", authMiddleware.Require(constants.CapCentersManage), ctl.Deactivate)
}
