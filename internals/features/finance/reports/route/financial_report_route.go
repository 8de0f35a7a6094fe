package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/finance/reports/controller"
	authMiddleware "rumahmengaji_backend/internals/middlewares/auth"
)

func FinancialReportRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewFinancialReportController(db)
	r.Get("/study-centers/:id/financial-report", authMiddleware.Require(constants.CapReportsView), ctl.Get)
}
