package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/lembaga/study_centers/dto"
	"rumahmengaji_backend/internals/features/lembaga/study_centers/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type StudyCenterController struct {
	Svc      *service.StudyCenterService
	Validate *validator.Validate
}

func NewStudyCenterController(db *gorm.DB, v *validator.Validate) *StudyCenterController {
	return &StudyCenterController{Svc: service.NewStudyCenterService(db), Validate: v}
}

// POST /api/study-centers
func (ctl *StudyCenterController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudyCenterRequest
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
	zap.L().Info("study center created", zap.Uint("study_center_id", m.StudyCenterID))
	return helper.JsonCreated(c, "study center created", dto.FromModel(m))
}

// GET /api/study-centers (aktif saja)
func (ctl *StudyCenterController) List(c *fiber.Ctx) error {
	limit, offset := helper.ResolveLimitOffset(c)
	rows, total, err := ctl.Svc.ListActive(c.UserContext(), limit, offset)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	p := helper.BuildPagination(total, offset, limit, len(rows))
	return helper.JsonList(c, "study centers fetched", dto.FromModels(rows), &p)
}

// PATCH /api/study-centers/:id/deactivate
func (ctl *StudyCenterController) Deactivate(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := ctl.Svc.Deactivate(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "study center deactivated", dto.FromModel(m))
}
