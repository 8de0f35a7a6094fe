package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/school/attendance/controller"
	authMiddleware "rumahmengaji_backend/internals/middlewares/auth"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAttendanceController(db, v)

	r.Post("/attendance", authMiddleware.Require(constants.CapAttendanceRecord), ctl.Create)
	r.Get("/classes/:id/attendance", authMiddleware.Require(constants.CapAttendanceView), ctl.ListByClass)
}
