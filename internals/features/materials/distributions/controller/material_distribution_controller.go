package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/materials/distributions/dto"
	"rumahmengaji_backend/internals/features/materials/distributions/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type MaterialDistributionController struct {
	Svc      *service.MaterialDistributionService
	Validate *validator.Validate
}

func NewMaterialDistributionController(db *gorm.DB, v *validator.Validate) *MaterialDistributionController {
	return &MaterialDistributionController{Svc: service.NewMaterialDistributionService(db), Validate: v}
}

// POST /api/material-distributions
func (ctl *MaterialDistributionController) Create(c *fiber.Ctx) error {
	var req dto.CreateMaterialDistributionRequest
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
	zap.L().Info("material distribution recorded",
		zap.Uint("material_distribution_id", m.MaterialDistributionID),
		zap.String("material_type", m.MaterialDistributionMaterialType),
		zap.Bool("is_sale", m.MaterialDistributionIsSale),
	)
	return helper.JsonCreated(c, "material distribution recorded", dto.FromModel(m))
}

// GET /api/material-distributions?study_center_id=&material_type=&date_from=&date_to=&is_sale=
func (ctl *MaterialDistributionController) List(c *fiber.Ctx) error {
	q := dto.ListMaterialDistributionsQuery{MaterialType: strings.ToLower(strings.TrimSpace(c.Query("material_type")))}
	var err error
	if q.StudyCenterID, err = helper.QueryUint(c, "study_center_id"); err != nil {
		return helper.JsonAppError(c, err)
	}
	if q.DateFrom, err = helper.QueryDate(c, "date_from"); err != nil {
		return helper.JsonAppError(c, err)
	}
	if q.DateTo, err = helper.QueryDate(c, "date_to"); err != nil {
		return helper.JsonAppError(c, err)
	}
	if q.IsSale, err = helper.QueryBool(c, "is_sale"); err != nil {
		return helper.JsonAppError(c, err)
	}
	q.Limit, q.Offset = helper.ResolveLimitOffset(c)

	rows, total, err := ctl.Svc.List(c.UserContext(), q)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	p := helper.BuildPagination(total, q.Offset, q.Limit, len(rows))
	return helper.JsonList(c, "material distributions fetched", dto.FromModels(rows), &p)
}
