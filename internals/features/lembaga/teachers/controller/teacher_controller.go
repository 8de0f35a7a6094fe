package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/lembaga/teachers/dto"
	"rumahmengaji_backend/internals/features/lembaga/teachers/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type TeacherController struct {
	Svc      *service.TeacherService
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{Svc: service.NewTeacherService(db), Validate: v}
}

// POST /api/teachers
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
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
	zap.L().Info("teacher created",
		zap.Uint("teacher_id", m.TeacherID),
		zap.Uint("study_center_id", m.TeacherStudyCenterID),
	)
	return helper.JsonCreated(c, "teacher created", dto.FromModel(m))
}

// GET /api/teachers?study_center_id=&is_active=
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	centerID, err := helper.QueryUint(c, "study_center_id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	active, err := helper.QueryBool(c, "is_active")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	limit, offset := helper.ResolveLimitOffset(c)

	rows, total, err := ctl.Svc.List(c.UserContext(), dto.ListTeachersQuery{
		StudyCenterID: centerID,
		IsActive:      active,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	p := helper.BuildPagination(total, offset, limit, len(rows))
	return helper.JsonList(c, "teachers fetched", dto.FromModels(rows), &p)
}

// PATCH /api/teachers/:id/deactivate
func (ctl *TeacherController) Deactivate(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := ctl.Svc.Deactivate(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "teacher deactivated", dto.FromModel(m))
}
