package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/lembaga/students/controller"
	authMiddleware "rumahmengaji_backend/internals/middlewares/auth"
)

func StudentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewStudentController(db, v)

	g := r.Group("/students")
	g.Post("/", authMiddleware.Require(constants.CapStudentsManage), ctl.Create)
	g.Get("/", authMiddleware.Require(constants.CapMembersView), ctl.List)
	g.Patch("/:id/deactivate", authMiddleware.Require(constants.CapStudentsManage), ctl.Deactivate)
}
