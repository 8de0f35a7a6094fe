package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/lembaga/students/dto"
	"rumahmengaji_backend/internals/features/lembaga/students/model"
	centerService "rumahmengaji_backend/internals/features/lembaga/study_centers/service"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/apperror"
)

const errICTaken = "student IC number is already registered"

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

func Find(tx *gorm.DB, id uint) (*model.StudentModel, error) {
	var m model.StudentModel
	if err := tx.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("student", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "load student")
	}
	return &m, nil
}

func FindActive(tx *gorm.DB, id uint) (*model.StudentModel, error) {
	m, err := Find(tx, id)
	if err != nil {
		return nil, err
	}
	if !m.StudentIsActive {
		return nil, apperror.Inactive("student", id)
	}
	return m, nil
}

// Create: user harus aktif & ber-role pelajar, pusat aktif,
// satu profil per user, IC unik antar pelajar.
func (s *StudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*model.StudentModel, error) {
	req.Normalize()
	if req.ICNumber == "" || req.Address == "" {
		return nil, apperror.Validation("ic_number and address are required")
	}
	if !req.DateOfBirth.Valid() {
		return nil, apperror.Validation("date_of_birth is required")
	}

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := userService.FindActive(tx, req.UserID)
		if err != nil {
			return err
		}
		if u.Role != constants.RoleStudent {
			return apperror.Newf(apperror.KindValidation,
				"user %d has role %s, only %s may own a student profile", u.ID, u.Role, constants.RoleStudent)
		}
		if _, err := centerService.FindActive(tx, req.StudyCenterID); err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&model.StudentModel{}).
			Where("student_user_id = ?", req.UserID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperror.Newf(apperror.KindDuplicateRecord, "user %d already has a student profile", req.UserID)
		}
		if err := tx.Model(&model.StudentModel{}).
			Where("student_ic_number = ?", req.ICNumber).
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

func (s *StudentService) List(ctx context.Context, q dto.ListStudentsQuery) ([]model.StudentModel, int64, error) {
	q.Limit, q.Offset = helper.ClampLimitOffset(q.Limit, q.Offset)
	db := s.DB.WithContext(ctx).Model(&model.StudentModel{})
	if q.StudyCenterID != nil {
		db = db.Where("student_study_center_id = ?", *q.StudyCenterID)
	}
	if q.IsActive != nil {
		db = db.Where("student_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "count students")
	}
	var rows []model.StudentModel
	if err := db.Order("student_created_at DESC, student_id DESC").
		Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "list students")
	}
	return rows, total, nil
}

// Deactivate idempotent; enrollment yang ada dibiarkan.
func (s *StudentService) Deactivate(ctx context.Context, id uint) (*model.StudentModel, error) {
	var out model.StudentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&out, "student_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("student", id)
			}
			return err
		}
		if !out.StudentIsActive {
			return nil
		}
		out.StudentIsActive = false
		return tx.Model(&out).Update("student_is_active", false).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindUniquenessViolation, errICTaken)
	}
	return &out, nil
}
