package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// ParseIDParam membaca :name sebagai id positif.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Newf(apperror.KindValidation, "%s must be a positive integer", name)
	}
	return uint(id), nil
}

// QueryUint: nil kalau kosong.
func QueryUint(c *fiber.Ctx, key string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil, apperror.Newf(apperror.KindValidation, "%s must be a positive integer", key)
	}
	id := uint(v)
	return &id, nil
}

// QueryBool: nil kalau kosong.
func QueryBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperror.Newf(apperror.KindValidation, "%s must be true or false", key)
	}
	return &b, nil
}

// QueryDate: zero Date kalau kosong.
func QueryDate(c *fiber.Ctx, key string) (dbtime.Date, error) {
	d, err := dbtime.ParseDate(c.Query(key))
	if err != nil {
		return dbtime.Date{}, apperror.Newf(apperror.KindValidation, "%s must be a date (YYYY-MM-DD)", key)
	}
	return d, nil
}

// ResolveLimitOffset membaca ?limit= & ?offset= lalu normalisasi.
func ResolveLimitOffset(c *fiber.Ctx) (limit, offset int) {
	limit, _ = strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	offset, _ = strconv.Atoi(strings.TrimSpace(c.Query("offset")))
	return ClampLimitOffset(limit, offset)
}

// ClampLimitOffset: limit default 100, max 500; offset >= 0.
func ClampLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
