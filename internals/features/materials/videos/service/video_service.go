package service

import (
	"context"
	"errors"
	"net/url"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	centerService "rumahmengaji_backend/internals/features/lembaga/study_centers/service"
	"rumahmengaji_backend/internals/features/materials/videos/dto"
	"rumahmengaji_backend/internals/features/materials/videos/model"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/apperror"
)

type VideoService struct {
	DB *gorm.DB
}

func NewVideoService(db *gorm.DB) *VideoService {
	return &VideoService{DB: db}
}

// checkFileURL: harus URL absolut http/https.
func checkFileURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return apperror.Newf(apperror.KindValidation, "file_url %q must be an absolute http(s) URL", raw)
	}
	return nil
}

func (s *VideoService) Create(ctx context.Context, req dto.CreateVideoRequest) (*model.VideoModel, error) {
	req.Normalize()
	if req.Title == "" {
		return nil, apperror.Validation("title is required")
	}
	if err := checkFileURL(req.FileURL); err != nil {
		return nil, err
	}
	if req.Duration != nil && *req.Duration < 0 {
		return nil, apperror.Validation("duration must not be negative")
	}
	if req.UploadedBy == 0 {
		return nil, apperror.Validation("uploaded_by is required")
	}

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := centerService.FindActive(tx, req.StudyCenterID); err != nil {
			return err
		}
		if _, err := userService.FindActive(tx, req.UploadedBy); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindDuplicateRecord, "video already exists")
	}
	return m, nil
}

func (s *VideoService) List(ctx context.Context, q dto.ListVideosQuery) ([]model.VideoModel, int64, error) {
	q.Limit, q.Offset = helper.ClampLimitOffset(q.Limit, q.Offset)
	db := s.DB.WithContext(ctx).Model(&model.VideoModel{})
	if q.StudyCenterID != nil {
		db = db.Where("video_study_center_id = ?", *q.StudyCenterID)
	}
	if q.IsActive != nil {
		db = db.Where("video_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "count videos")
	}
	var rows []model.VideoModel
	if err := db.Order("video_created_at DESC, video_id DESC").
		Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "list videos")
	}
	return rows, total, nil
}

func (s *VideoService) Deactivate(ctx context.Context, id uint) (*model.VideoModel, error) {
	var out model.VideoModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&out, "video_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("video", id)
			}
			return err
		}
		if !out.VideoIsActive {
			return nil
		}
		out.VideoIsActive = false
		return tx.Model(&out).Update("video_is_active", false).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindDuplicateRecord, "video conflict")
	}
	return &out, nil
}
