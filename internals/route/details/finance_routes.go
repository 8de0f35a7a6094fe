package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	FundTransactionRoute "rumahmengaji_backend/internals/features/finance/fund_transactions/route"
	PaymentRoute "rumahmengaji_backend/internals/features/finance/payments/route"
	ReportRoute "rumahmengaji_backend/internals/features/finance/reports/route"
)

func FinanceRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	PaymentRoute.PaymentRoutes(r, db, v)
	FundTransactionRoute.FundTransactionRoutes(r, db, v)
	ReportRoute.FinancialReportRoutes(r, db) // read-only, tanpa body
}
