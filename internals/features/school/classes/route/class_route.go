package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/school/classes/controller"
	authMiddleware "rumahmengaji_backend/internals/middlewares/auth"
)

func ClassRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	classCtl := controller.NewClassController(db, v)
	enrollCtl := controller.NewClassEnrollmentController(db, v)

	g := r.Group("/classes")
	g.Post("/", authMiddleware.Require(constants.CapClassesManage), classCtl.Create)
	g.Get("/", authMiddleware.Require(constants.CapClassesView), classCtl.List)
	g.Patch("/:id/deactivate", authMiddleware.Require(constants.CapClassesManage), classCtl.Deactivate)

	g.Post("/:id/enrollments", authMiddleware.Require(constants.CapEnrollmentsManage), enrollCtl.Enroll)
	g.Get("/:id/enrollments", authMiddleware.Require(constants.CapClassesView), enrollCtl.ListByClass)

	r.Patch("/class-enrollments/:id/deactivate", authMiddleware.Require(constants.CapEnrollmentsManage), enrollCtl.Deactivate)
}
