package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "rumahmengaji_backend/internals/features/users/auth/model"
	userModel "rumahmengaji_backend/internals/features/users/user/model"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenService struct {
	DB     *gorm.DB
	Secret string
	TTL    time.Duration
	now    func() time.Time
}

func NewTokenService(db *gorm.DB, secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenService{DB: db, Secret: secret, TTL: ttl, now: time.Now}
}

// Issue: HS256 access token {sub, role, iat, exp}.
func (s *TokenService) Issue(u *userModel.UserModel) (string, time.Time, error) {
	now := s.now().UTC()
	exp := now.Add(s.TTL)
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(u.ID), 10),
		"role": string(u.Role),
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse memverifikasi signature + exp, lalu kembalikan (user id, role, exp).
func (s *TokenService) Parse(raw string) (uint, string, time.Time, error) {
	return ParseAccessToken(raw, s.Secret)
}

func ParseAccessToken(raw, secret string) (uint, string, time.Time, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, "", time.Time{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", time.Time{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(strings.TrimSpace(sub), 10, 64)
	if err != nil || id == 0 {
		return 0, "", time.Time{}, ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	var exp time.Time
	if v, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(v), 0)
	}
	return uint(id), role, exp, nil
}

func (s *TokenService) hash(raw string) string {
	m := hmac.New(sha256.New, []byte(s.Secret))
	_, _ = m.Write([]byte(raw))
	return hex.EncodeToString(m.Sum(nil))
}

// Revoke: simpan HMAC token sampai exp (idempotent).
func (s *TokenService) Revoke(ctx context.Context, raw string, exp time.Time) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if exp.IsZero() {
		exp = s.now().Add(s.TTL)
	}
	row := authModel.TokenBlacklist{Token: s.hash(raw), ExpiredAt: exp.UTC()}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&row).Error
}

func (s *TokenService) IsRevoked(ctx context.Context, raw string) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&authModel.TokenBlacklist{}).
		Where("token = ?", s.hash(raw)).
		Count(&n).Error
	return n > 0, err
}

// PurgeExpired menghapus baris blacklist yang exp-nya sudah lewat `grace`.
func (s *TokenService) PurgeExpired(ctx context.Context, grace time.Duration) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("expired_at < ?", s.now().Add(-grace).UTC()).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
