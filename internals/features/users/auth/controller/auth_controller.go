package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/users/auth/service"
	userDTO "rumahmengaji_backend/internals/features/users/user/dto"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Svc      *service.AuthService
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, tokens *service.TokenService, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Svc: service.NewAuthService(db, tokens), Validate: v}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	ExpiresAt   time.Time            `json:"expires_at"`
	User        userDTO.UserResponse `json:"user"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	res, err := ac.Svc.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		zap.L().Info("login rejected", zap.String("ip", c.IP()), zap.Error(err))
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "login successful", loginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   res.ExpiresAt,
		User:        userDTO.FromModel(res.User),
	})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Svc.Logout(c.UserContext(), helper.RawToken(c)); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "logout successful", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	u, err := userService.Find(ac.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", userDTO.FromModel(u))
}
