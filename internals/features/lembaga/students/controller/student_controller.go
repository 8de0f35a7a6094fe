package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/lembaga/students/dto"
	"rumahmengaji_backend/internals/features/lembaga/students/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type StudentController struct {
	Svc      *service.StudentService
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{Svc: service.NewStudentService(db), Validate: v}
}

// POST /api/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	zap.L().Info("student created",
		zap.Uint("student_id", m.StudentID),
		zap.Uint("study_center_id", m.StudentStudyCenterID),
	)
	return helper.JsonCreated(c, "student created", dto.FromModel(m))
}

// GET /api/students?study_center_id=&is_active=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	centerID, err := helper.QueryUint(c, "study_center_id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	active, err := helper.QueryBool(c, "is_active")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	limit, offset := helper.ResolveLimitOffset(c)

	rows, total, err := ctl.Svc.List(c.UserContext(), dto.ListStudentsQuery{
		StudyCenterID: centerID,
		IsActive:      active,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	p := helper.BuildPagination(total, offset, limit, len(rows))
	return helper.JsonList(c, "students fetched", dto.FromModels(rows), &p)
}

// PATCH /api/students/:id/deactivate
func (ctl *StudentController) Deactivate(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := ctl.Svc.Deactivate(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "student deactivated", dto.FromModel(m))
}
