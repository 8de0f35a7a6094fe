package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/school/attendance/dto"
	"rumahmengaji_backend/internals/features/school/attendance/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type AttendanceController struct {
	Svc      *service.AttendanceService
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{Svc: service.NewAttendanceService(db), Validate: v}
}

// POST /api/attendance
func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	// pencatat default = user yang login
	if req.RecordedBy == 0 {
		uid, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.JsonAppError(c, err)
		}
		req.RecordedBy = uid
	}

	m, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	zap.L().Info("attendance recorded",
		zap.Uint("class_id", m.AttendanceClassID),
		zap.Uint("student_id", m.AttendanceStudentID),
		zap.String("date", m.AttendanceDate.String()),
		zap.String("status", m.AttendanceStatus),
	)
	return helper.JsonCreated(c, "attendance recorded", dto.FromModel(m))
}

// GET /api/classes/:id/attendance?date_from=&date_to=
func (ctl *AttendanceController) ListByClass(c *fiber.Ctx) error {
	classID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var q dto.ListAttendanceQuery
	if q.DateFrom, err = helper.QueryDate(c, "date_from"); err != nil {
		return helper.JsonAppError(c, err)
	}
	if q.DateTo, err = helper.QueryDate(c, "date_to"); err != nil {
		return helper.JsonAppError(c, err)
	}
	q.Limit, q.Offset = helper.ResolveLimitOffset(c)

	rows, total, err := ctl.Svc.ListByClass(c.UserContext(), classID, q)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	p := helper.BuildPagination(total, q.Offset, q.Limit, len(rows))
	return helper.JsonList(c, "attendance fetched", dto.FromModels(rows), &p)
}
