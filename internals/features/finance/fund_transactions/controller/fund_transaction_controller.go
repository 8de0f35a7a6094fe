package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/finance/fund_transactions/dto"
	"rumahmengaji_backend/internals/features/finance/fund_transactions/service"
	helper "rumahmengaji_backend/internals/helpers"
)

type FundTransactionController struct {
	Svc      *service.FundTransactionService
	Validate *validator.Validate
}

func NewFundTransactionController(db *gorm.DB, v *validator.Validate) *FundTransactionController {
	return &FundTransactionController{Svc: service.NewFundTransactionService(db), Validate: v}
}

// POST /api/fund-transactions
func (ctl *FundTransactionController) Create(c *fiber.Ctx) error {
	var req dto.CreateFundTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	if req.RecordedBy == 0 {
		uid, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.JsonAppError(c, err)
		}
		req.RecordedBy = uid
	}

	m, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	zap.L().Info("fund transaction recorded",
		zap.Uint("fund_transaction_id", m.FundTransactionID),
		zap.String("fund_type", m.FundTransactionFundType),
		zap.String("amount", helper.Money(m.FundTransactionAmount)),
	)
	return helper.JsonCreated(c, "fund transaction recorded", dto.FromModel(m))
}

// GET /api/fund-transactions?study_center_id=&fund_type=&date_from=&date_to=
func (ctl *FundTransactionController) List(c *fiber.Ctx) error {
	q := dto.ListFundTransactionsQuery{FundType: strings.ToLower(strings.TrimSpace(c.Query("fund_type")))}
	var err error
	if q.StudyCenterID, err = helper.QueryUint(c, "study_center_id"); err != nil {
		return helper.JsonAppError(c, err)
	}
	if q.DateFrom, err = helper.QueryDate(c, "date_from"); err != nil {
		return helper.JsonAppError(c, err)
	}
	if q.DateTo, err = helper.QueryDate(c, "date_to"); err != nil {
		return helper.JsonAppError(c, err)
	}
	q.Limit, q.Offset = helper.ResolveLimitOffset(c)

	rows, total, err := ctl.Svc.List(c.UserContext(), q)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	p := helper.BuildPagination(total, q.Offset, q.Limit, len(rows))
	return helper.JsonList(c, "fund transactions fetched", dto.FromModels(rows), &p)
}
