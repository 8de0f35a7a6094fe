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

type ClassController struct {
	Svc      *service.ClassService
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{Svc: service.NewClassService(db), Validate: v}
}

// POST /api/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	zap.L().Info("class created",
		zap.Uint("class_id", m.ClassID),
		zap.Uint("teacher_id", m.ClassTeacherID),
		zap.String("schedule_day", m.ClassScheduleDay),
		zap.Stringer("start", m.ClassStartTime),
		zap.Stringer("end", m.ClassEndTime),
	)
	return helper.JsonCreated(c, "class created", dto.FromModel(m))
}

// GET /api/classes?study_center_id=&teacher_id=&schedule_day=&active=
func (ctl *ClassController) List(c *fiber.Ctx) error {
	q := dto.ListClassesQuery{ScheduleDay: c.Query("schedule_day")}
	var err error
	if q.StudyCenterID, err = helper.QueryUint(c, "study_center_id"); err != nil {
		return helper.JsonAppError(c, err)
	}
	if q.TeacherID, err = helper.QueryUint(c, "teacher_id"); err != nil {
		return helper.JsonAppError(c, err)
	}
	if q.IsActive, err = helper.QueryBool(c, "active"); err != nil {
		return helper.JsonAppError(c, err)
	}
	q.Limit, q.Offset = helper.ResolveLimitOffset(c)

	rows, total, err := ctl.Svc.List(c.UserContext(), q)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	p := helper.BuildPagination(total, q.Offset, q.Limit, len(rows))
	return helper.JsonList(c, "classes fetched", dto.FromModels(rows), &p)
}

// PATCH /api/classes/:id/deactivate
func (ctl *ClassController) Deactivate(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := ctl.Svc.Deactivate(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "class deactivated", dto.FromModel(m))
}
