package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/school/classes/dto"
	"rumahmengaji_backend/internals/features/school/classes/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type ClassEnrollmentController struct {
	Svc      *service.ClassEnrollmentService
	Validate *validator.Validate
}

func NewClassEnrollmentController(db *gorm.DB, v *validator.Validate) *ClassEnrollmentController {
	return &ClassEnrollmentController{Svc: service.NewClassEnrollmentService(db), Validate: v}
}

// POST /api/classes/:id/enrollments
func (ctl *ClassEnrollmentController) Enroll(c *fiber.Ctx) error {
	classID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m, err := ctl.Svc.Enroll(c.UserContext(), classID, req.StudentID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	zap.L().Info("student enrolled",
		zap.Uint("class_id", classID),
		zap.Uint("student_id", req.StudentID),
		zap.Uint("class_enrollment_id", m.ClassEnrollmentID),
	)
	return helper.JsonCreated(c, "student enrolled", dto.FromEnrollmentModel(m))
}

// GET /api/classes/:id/enrollments?active=
func (ctl *ClassEnrollmentController) ListByClass(c *fiber.Ctx) error {
	classID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	active, err := helper.QueryBool(c, "active")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	limit, offset := helper.ResolveLimitOffset(c)

	rows, total, err := ctl.Svc.ListByClass(c.UserContext(), classID, active, limit, offset)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	p := helper.BuildPagination(total, offset, limit, len(rows))
	return helper.JsonList(c, "enrollments fetched", dto.FromEnrollmentModels(rows), &p)
}

// PATCH /api/class-enrollments/:id/deactivate
func (ctl *ClassEnrollmentController) Deactivate(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := ctl.Svc.Deactivate(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "enrollment deactivated", dto.FromEnrollmentModel(m))
}
