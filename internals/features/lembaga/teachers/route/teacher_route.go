package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/lembaga/teachers/controller"
	authMiddleware "rumahmengaji_backend/internals/middlewares/auth"
)

func TeacherRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewTeacherController(db, v)

	g := r.Group("/teachers")
	g.Post("/", authMiddleware.Require(constants.CapTeachersManage), ctl.Create)
	g.Get("/", authMiddleware.Require(constants.CapMembersView), ctl.List)
	g.Patch("/:id/deactivate", authMiddleware.Require(constants.CapTeachersManage), ctl.Deactivate)
}
