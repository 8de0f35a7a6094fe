package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/materials/videos/dto"
	"rumahmengaji_backend/internals/features/materials/videos/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type VideoController struct {
	Svc      *service.VideoService
	Validate *validator.Validate
}

func NewVideoController(db *gorm.DB, v *validator.Validate) *VideoController {
	return &VideoController{Svc: service.NewVideoService(db), Validate: v}
}

// POST /api/videos
func (ctl *VideoController) Create(c *fiber.Ctx) error {
	var req dto.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	if req.UploadedBy == 0 {
		uid, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.JsonAppError(c, err)
		}
		req.UploadedBy = uid
	}

	m, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	zap.L().Info("video created", zap.Uint("video_id", m.VideoID), zap.Uint("study_center_id", m.VideoStudyCenterID))
	return helper.JsonCreated(c, "video created", dto.FromModel(m))
}

// GET /api/videos?study_center_id=&is_active=
func (ctl *VideoController) List(c *fiber.Ctx) error {
	var q dto.ListVideosQuery
	var err error
	if q.StudyCenterID, err = helper.QueryUint(c, "study_center_id"); err != nil {
		return helper.JsonAppError(c, err)
	}
	if q.IsActive, err = helper.QueryBool(c, "is_active"); err != nil {
		return helper.JsonAppError(c, err)
	}
	q.Limit, q.Offset = helper.ResolveLimitOffset(c)

	rows, total, err := ctl.Svc.List(c.UserContext(), q)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	p := helper.BuildPagination(total, q.Offset, q.Limit, len(rows))
	return helper.JsonList(c, "videos fetched", dto.FromModels(rows), &p)
}

// PATCH /api/videos/:id/deactivate
func (ctl *VideoController) Deactivate(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	m, err := ctl.Svc.Deactivate(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "video deactivated", dto.FromModel(m))
}
