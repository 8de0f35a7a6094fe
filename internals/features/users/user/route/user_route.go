package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	userController "rumahmengaji_backend/internals/features/users/user/controller"
	authMiddleware "rumahmengaji_backend/internals/middlewares/auth"
)

func UserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := userController.NewUserController(db, v)

	g := r.Group("/users")
	g.Post("/", authMiddleware.Require(constants.CapUsersManage), ctrl.CreateUser)
	g.Get("/", authMiddleware.Require(constants.CapUsersView), ctrl.GetUsers)
	g.Patch("/:id", authMiddleware.Require(constants.CapUsersManage), ctrl.UpdateUser)
}
