package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/finance/fund_transactions/controller"
	authMiddleware "rumahmengaji_backend/internals/middlewares/auth"
)

func FundTransactionRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewFundTransactionController(db, v)

	g := r.Group("/fund-transactions")
	g.Post("/", authMiddleware.Require(constants.CapFundsManage), ctl.Create)
	g.Get("/", authMiddleware.Require(constants.CapFundsView), ctl.List)
}
