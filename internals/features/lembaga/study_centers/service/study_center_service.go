package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rumahmengaji_backend/internals/features/lembaga/study_centers/dto"
	"rumahmengaji_backend/internals/features/lembaga/study_centers/model"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/apperror"
)

type StudyCenterService struct {
	DB *gorm.DB
}

func NewStudyCenterService(db *gorm.DB) *StudyCenterService {
	return &StudyCenterService{DB: db}
}

// Find: NotFound kalau tidak ada.
func Find(tx *gorm.DB, id uint) (*model.StudyCenterModel, error) {
	var m model.StudyCenterModel
	if err := tx.First(&m, "study_center_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("study center", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "load study center")
	}
	return &m, nil
}

// FindActive: NotFound / Inactive.
func FindActive(tx *gorm.DB, id uint) (*model.StudyCenterModel, error) {
	m, err := Find(tx, id)
	if err != nil {
		return nil, err
	}
	if !m.StudyCenterIsActive {
		return nil, apperror.Inactive("study center", id)
	}
	return m, nil
}

func (s *StudyCenterService) Create(ctx context.Context, req dto.CreateStudyCenterRequest) (*model.StudyCenterModel, error) {
	req.Normalize()
	if req.Name == "" || req.Address == "" {
		return nil, apperror.Validation("name and address are required")
	}

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := userService.FindActive(tx, req.AdminID); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindUniquenessViolation, "study center already exists")
	}
	return m, nil
}

// ListActive: hanya pusat aktif, terbaru dulu.
func (s *StudyCenterService) ListActive(ctx context.Context, limit, offset int) ([]model.StudyCenterModel, int64, error) {
	limit, offset = helper.ClampLimitOffset(limit, offset)
	db := s.DB.WithContext(ctx).Model(&model.StudyCenterModel{}).Where("study_center_is_active = ?", true)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "count study centers")
	}
	var rows []model.StudyCenterModel
	if err := db.Order("study_center_created_at DESC, study_center_id DESC").
		Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "list study centers")
	}
	return rows, total, nil
}

// Deactivate idempotent: pusat yang sudah nonaktif dikembalikan apa adanya.
func (s *StudyCenterService) Deactivate(ctx context.Context, id uint) (*model.StudyCenterModel, error) {
	var out model.StudyCenterModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&out, "study_center_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("study center", id)
			}
			return err
		}
		if !out.StudyCenterIsActive {
			return nil
		}
		out.StudyCenterIsActive = false
		return tx.Model(&out).Update("study_center_is_active", false).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindUniquenessViolation, "study center conflict")
	}
	return &out, nil
}
