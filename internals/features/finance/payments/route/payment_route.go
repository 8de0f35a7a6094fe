package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/finance/payments/controller"
	authMiddleware "rumahmengaji_backend/internals/middlewares/auth"
)

func PaymentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewPaymentController(db, v)

	g := r.Group("/payments")
	g.Post("/", authMiddleware.Require(constants.CapPaymentsManage), ctl.Create)
	g.Patch("/:id", authMiddleware.Require(constants.CapPaymentsManage), ctl.Update)

	r.Get("/students/:id/payments", authMiddleware.Require(constants.CapPaymentsView), ctl.ListByStudent)
}
