package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	// ====== Lembaga features ======
	StudentRoutes "rumahmengaji_backend/internals/features/lembaga/students/route"
	StudyCenterRoutes "rumahmengaji_backend/internals/features/lembaga/study_centers/route"
	TeacherRoutes "rumahmengaji_backend/internals/features/lembaga/teachers/route"
)

/* ===================== PRIVATE ===================== */
// Pusat, guru dan murid. Guard capability dipasang per endpoint.
func LembagaRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	StudyCenterRoutes.StudyCenterRoutes(r, db, v)
	TeacherRoutes.TeacherRoutes(r, db, v)
	StudentRoutes.StudentRoutes(r, db, v)
}
