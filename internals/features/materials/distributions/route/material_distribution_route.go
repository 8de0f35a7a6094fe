package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/materials/distributions/controller"
	authMiddleware "rumahmengaji_backend/internals/middlewares/auth"
)

func MaterialDistributionRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewMaterialDistributionController(db, v)

	g := r.Group("/material-distributions")
	g.Post("/", authMiddleware.Require(constants.CapMaterialsManage), ctl.Create)
	g.Get("/", authMiddleware.Require(constants.CapMaterialsView), ctl.List)
}
