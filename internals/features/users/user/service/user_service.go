package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rumahmengaji_backend/internals/constants"
	authHelper "rumahmengaji_backend/internals/features/users/auth/helper"
	"rumahmengaji_backend/internals/features/users/user/dto"
	"rumahmengaji_backend/internals/features/users/user/model"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/apperror"
)

const errEmailTaken = "email is already registered"

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Find: NotFound kalau id tidak ada.
func Find(tx *gorm.DB, id uint) (*model.UserModel, error) {
	var u model.UserModel
	if err := tx.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "load user")
	}
	return &u, nil
}

// FindActive: NotFound / Inactive.
func FindActive(tx *gorm.DB, id uint) (*model.UserModel, error) {
	u, err := Find(tx, id)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, apperror.Inactive("user", id)
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*model.UserModel, error) {
	req.Normalize()
	if !constants.Role(req.Role).Valid() {
		return nil, apperror.Newf(apperror.KindValidation, "unknown role %q", req.Role)
	}
	if len(req.Password) < 8 {
		return nil, apperror.Validation("password must be at least 8 characters")
	}
	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "hash password")
	}

	m := req.ToModel(hash)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.UserModel{}).Where("email = ?", m.Email).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperror.New(apperror.KindUniquenessViolation, errEmailTaken)
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindUniquenessViolation, errEmailTaken)
	}
	return m, nil
}

func (s *UserService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*model.UserModel, error) {
	req.Normalize()
	if req.Role != nil && !constants.Role(*req.Role).Valid() {
		return nil, apperror.Newf(apperror.KindValidation, "unknown role %q", *req.Role)
	}

	var out *model.UserModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.UserModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("user", id)
			}
			return err
		}
		if req.Email != nil && *req.Email != u.Email {
			var n int64
			if err := tx.Model(&model.UserModel{}).
				Where("email = ? AND id <> ?", *req.Email, id).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return apperror.New(apperror.KindUniquenessViolation, errEmailTaken)
			}
		}
		req.Apply(&u)
		if err := tx.Save(&u).Error; err != nil {
			return err
		}
		out = &u
		return nil
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindUniquenessViolation, errEmailTaken)
	}
	return out, nil
}

// ResetPassword dipakai CLI admin.
func (s *UserService) ResetPassword(ctx context.Context, email, password string) error {
	if len(password) < 8 {
		return apperror.Validation("password must be at least 8 characters")
	}
	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return apperror.Wrap(apperror.KindInternal, err, "hash password")
	}
	res := s.DB.WithContext(ctx).Model(&model.UserModel{}).
		Where("email = ?", email).
		Update("password_hash", hash)
	if res.Error != nil {
		return apperror.FromStorage(res.Error, apperror.KindUniquenessViolation, errEmailTaken)
	}
	if res.RowsAffected == 0 {
		return apperror.Newf(apperror.KindNotFound, "user %s not found", email)
	}
	return nil
}

func (s *UserService) List(ctx context.Context, q dto.ListUsersQuery) ([]model.UserModel, int64, error) {
	q.Limit, q.Offset = helper.ClampLimitOffset(q.Limit, q.Offset)
	db := s.DB.WithContext(ctx).Model(&model.UserModel{})
	if q.Role != nil {
		db = db.Where("role = ?", *q.Role)
	}
	if q.IsActive != nil {
		db = db.Where("is_active = ?", *q.IsActive)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "count users")
	}
	var rows []model.UserModel
	if err := db.Order("created_at DESC, id DESC").Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "list users")
	}
	return rows, total, nil
}
