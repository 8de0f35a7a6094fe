package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AttendanceRoutes "rumahmengaji_backend/internals/features/school/attendance/route"
	ClassRoutes "rumahmengaji_backend/internals/features/school/classes/route"
)

// Kelas, enrolment dan absensi
func SchoolRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ClassRoutes.ClassRoutes(r, db, v)
	AttendanceRoutes.AttendanceRoutes(r, db, v)
}
