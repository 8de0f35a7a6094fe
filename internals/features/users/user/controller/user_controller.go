package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/users/user/dto"
	"rumahmengaji_backend/internals/features/users/user/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type UserController struct {
	Svc      *service.UserService
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{Svc: service.NewUserService(db), Validate: v}
}

// POST /api/users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := uc.Validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	u, err := uc.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	zap.L().Info("user created", zap.Uint("user_id", u.ID), zap.String("role", string(u.Role)))
	return helper.JsonCreated(c, "user created", dto.FromModel(u))
}

// GET /api/users?role=&is_active=&limit=&offset=
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	q := dto.ListUsersQuery{}
	if role := c.Query("role"); role != "" {
		q.Role = &role
	}
	active, err := helper.QueryBool(c, "is_active")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	q.IsActive = active
	q.Limit, q.Offset = helper.ResolveLimitOffset(c)

	rows, total, err := uc.Svc.List(c.UserContext(), q)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	p := helper.BuildPagination(total, q.Offset, q.Limit, len(rows))
	return helper.JsonList(c, "users fetched", dto.FromModels(rows), &p)
}

// PATCH /api/users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := uc.Validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	u, err := uc.Svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "user updated", dto.FromModel(u))
}
