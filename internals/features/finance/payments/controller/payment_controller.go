package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/finance/payments/dto"
	"rumahmengaji_backend/internals/features/finance/payments/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type PaymentController struct {
	Svc      *service.PaymentService
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB, v *validator.Validate) *PaymentController {
	return &PaymentController{Svc: service.NewPaymentService(db), Validate: v}
}

// POST /api/payments
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
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
	zap.L().Info("payment created",
		zap.Uint("payment_id", m.PaymentID),
		zap.Uint("student_id", m.PaymentStudentID),
		zap.String("amount", helper.Money(m.PaymentAmount)),
	)
	return helper.JsonCreated(c, "payment created", dto.FromModel(m))
}

// PATCH /api/payments/:id
func (ctl *PaymentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	m, err := ctl.Svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	zap.L().Info("payment updated", zap.Uint("payment_id", id), zap.String("status", m.PaymentStatus))
	return helper.JsonUpdated(c, "payment updated", dto.FromModel(m))
}

// GET /api/students/:id/payments?status=
func (ctl *PaymentController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	limit, offset := helper.ResolveLimitOffset(c)

	rows, total, err := ctl.Svc.ListByStudent(c.UserContext(), studentID, c.Query("status"), limit, offset)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	p := helper.BuildPagination(total, offset, limit, len(rows))
	return helper.JsonList(c, "payments fetched", dto.FromModels(rows), &p)
}
