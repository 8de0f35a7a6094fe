package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	authHelper "rumahmengaji_backend/internals/features/users/auth/helper"
	userModel "rumahmengaji_backend/internals/features/users/user/model"
	"rumahmengaji_backend/internals/helpers/apperror"
)

const errBadCredentials = "email or password is incorrect"

// dummy hash supaya waktu respons sama walau email tidak terdaftar
var dummyHash, _ = authHelper.HashPassword("RandomDummyPassword123!")

type AuthService struct {
	DB     *gorm.DB
	Tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{DB: db, Tokens: tokens}
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *userModel.UserModel
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperror.Validation("email and password are required")
	}

	var u userModel.UserModel
	err := s.DB.WithContext(ctx).First(&u, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = authHelper.CheckPasswordHash(dummyHash, password)
			return nil, apperror.New(apperror.KindUnauthorized, errBadCredentials)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "load user")
	}
	if err := authHelper.CheckPasswordHash(u.Password, password); err != nil {
		return nil, apperror.New(apperror.KindUnauthorized, errBadCredentials)
	}
	if !u.IsActive {
		return nil, apperror.New(apperror.KindForbidden, "account is deactivated")
	}

	token, exp, err := s.Tokens.Issue(&u)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "sign token")
	}
	return &LoginResult{AccessToken: token, ExpiresAt: exp, User: &u}, nil
}

func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	_, _, exp, err := s.Tokens.Parse(rawToken)
	if err != nil {
		// token rusak/expired: tidak perlu di-blacklist
		return nil
	}
	if err := s.Tokens.Revoke(ctx, rawToken, exp); err != nil {
		return apperror.Wrap(apperror.KindInternal, err, "revoke token")
	}
	return nil
}
