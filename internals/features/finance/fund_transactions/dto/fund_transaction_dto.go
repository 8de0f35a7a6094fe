package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rumahmengaji_backend/internals/features/finance/fund_transactions/model"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

type CreateFundTransactionRequest struct {
	StudyCenterID    uint            `json:"study_center_id" validate:"required"`
	FundType         string          `json:"fund_type" validate:"required,oneof=donation study waqf infaq sadaqa"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description" validate:"required"`
	ContributorName  *string         `json:"contributor_name" validate:"omitempty,max=255"`
	ContributorPhone *string         `json:"contributor_phone" validate:"omitempty,max=20"`
	TransactionDate  dbtime.Date     `json:"transaction_date"`
	RecordedBy       uint            `json:"recorded_by"`
}

func (r *CreateFundTransactionRequest) Normalize() {
	r.FundType = strings.ToLower(strings.TrimSpace(r.FundType))
	r.Description = strings.TrimSpace(r.Description)
	r.ContributorName = trimPtr(r.ContributorName)
	r.ContributorPhone = trimPtr(r.ContributorPhone)
}

func (r *CreateFundTransactionRequest) ToModel() *model.FundTransactionModel {
	return &model.FundTransactionModel{
		FundTransactionStudyCenterID:    r.StudyCenterID,
		FundTransactionFundType:         r.FundType,
		FundTransactionAmount:           r.Amount,
		FundTransactionDescription:      r.Description,
		FundTransactionContributorName:  r.ContributorName,
		FundTransactionContributorPhone: r.ContributorPhone,
		FundTransactionDate:             r.TransactionDate,
		FundTransactionRecordedBy:       r.RecordedBy,
	}
}

type ListFundTransactionsQuery struct {
	StudyCenterID *uint
	FundType      string
	DateFrom      dbtime.Date
	DateTo        dbtime.Date
	Limit         int
	Offset        int
}

type FundTransactionResponse struct {
	ID               uint        `json:"id"`
	StudyCenterID    uint        `json:"study_center_id"`
	FundType         string      `json:"fund_type"`
	Amount           string      `json:"amount"`
	Description      string      `json:"description"`
	ContributorName  *string     `json:"contributor_name"`
	ContributorPhone *string     `json:"contributor_phone"`
	TransactionDate  dbtime.Date `json:"transaction_date"`
	RecordedBy       uint        `json:"recorded_by"`
	CreatedAt        time.Time   `json:"created_at"`
}

func FromModel(m *model.FundTransactionModel) FundTransactionResponse {
	return FundTransactionResponse{
		ID:               m.FundTransactionID,
		StudyCenterID:    m.FundTransactionStudyCenterID,
		FundType:         m.FundTransactionFundType,
		Amount:           helper.Money(m.FundTransactionAmount),
		Description:      m.FundTransactionDescription,
		ContributorName:  m.FundTransactionContributorName,
		ContributorPhone: m.FundTransactionContributorPhone,
		TransactionDate:  m.FundTransactionDate,
		RecordedBy:       m.FundTransactionRecordedBy,
		CreatedAt:        m.FundTransactionCreatedAt,
	}
}

func FromModels(list []model.FundTransactionModel) []FundTransactionResponse {
	out := make([]FundTransactionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
