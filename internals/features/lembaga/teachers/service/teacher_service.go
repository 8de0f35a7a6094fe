package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	centerService "rumahmengaji_backend/internals/features/lembaga/study_centers/service"
	"rumahmengaji_backend/internals/features/lembaga/teachers/dto"
	"rumahmengaji_backend/internals/features/lembaga/teachers/model"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/apperror"
)

const errICTaken = "teacher IC number is already registered"

type TeacherService struct {
	DB *gorm.DB
}

func NewTeacherService(db *gorm.DB) *TeacherService {
	return &TeacherService{DB: db}
}

func Find(tx *gorm.DB, id uint) (*model.TeacherModel, error) {
	var m model.TeacherModel
	if err := tx.First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("teacher", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "load teacher")
	}
	return &m, nil
}

func FindActive(tx *gorm.DB, id uint) (*model.TeacherModel, error) {
	m, err := Find(tx, id)
	if err != nil {
		return nil, err
	}
	if !m.TeacherIsActive {
		return nil, apperror.Inactive("teacher", id)
	}
	return m, nil
}

// Create: user & pusat harus aktif, satu profil per user, IC unik.
func (s *TeacherService) Create(ctx context.Context, req dto.CreateTeacherRequest) (*model.TeacherModel, error) {
	req.Normalize()
	if req.ICNumber == "" || req.Address == "" {
		return nil, apperror.Validation("ic_number and address are required")
	}
	if !req.DateOfBirth.Valid() {
		return nil, apperror.Validation("date_of_birth is required")
	}

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := userService.FindActive(tx, req.UserID); err != nil {
			return err
		}
		if _, err := centerService.FindActive(tx, req.StudyCenterID); err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&model.TeacherModel{}).
			Where("teacher_user_id = ?", req.UserID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperror.Newf(apperror.KindDuplicateRecord, "user %d already has a teacher profile", req.UserID)
		}
		if err := tx.Model(&model.TeacherModel{}).
			Where("teacher_ic_number = ?", req.ICNumber).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperror.New(apperror.KindUniquenessViolation, errICTaken)
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindUniquenessViolation, errICTaken)
	}
	return m, nil
}

func (s *TeacherService) List(ctx context.Context, q dto.ListTeachersQuery) ([]model.TeacherModel, int64, error) {
	q.Limit, q.Offset = helper.ClampLimitOffset(q.Limit, q.Offset)
	db := s.DB.WithContext(ctx).Model(&model.TeacherModel{})
	if q.StudyCenterID != nil {
		db = db.Where("teacher_study_center_id = ?", *q.StudyCenterID)
	}
	if q.IsActive != nil {
		db = db.Where("teacher_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "count teachers")
	}
	var rows []model.TeacherModel
	if err := db.Order("teacher_created_at DESC, teacher_id DESC").
		Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "list teachers")
	}
	return rows, total, nil
}

// Deactivate idempotent. Kelas milik pengajar tidak ikut dinonaktifkan.
func (s *TeacherService) Deactivate(ctx context.Context, id uint) (*model.TeacherModel, error) {
	var out model.TeacherModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&out, "teacher_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("teacher", id)
			}
			return err
		}
		if !out.TeacherIsActive {
			return nil
		}
		out.TeacherIsActive = false
		return tx.Model(&out).Update("teacher_is_active", false).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindUniquenessViolation, errICTaken)
	}
	return &out, nil
}
