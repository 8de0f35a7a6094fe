package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/finance/reports/dto"
	"rumahmengaji_backend/internals/features/finance/reports/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type FinancialReportController struct {
	Svc *service.FinancialReportService
}

func NewFinancialReportController(db *gorm.DB) *FinancialReportController {
	return &FinancialReportController{Svc: service.NewFinancialReportService(db)}
}

// GET /api/study-centers/:id/financial-report?date_from=&date_to=
func (ctl *FinancialReportController) Get(c *fiber.Ctx) error {
	centerID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	var w service.Window
	if w.From, err = helper.QueryDate(c, "date_from"); err != nil {
		return helper.JsonAppError(c, err)
	}
	if w.To, err = helper.QueryDate(c, "date_to"); err != nil {
		return helper.JsonAppError(c, err)
	}

	r, err := ctl.Svc.Build(c.UserContext(), centerID, w)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "financial report generated", dto.FromReport(r))
}
