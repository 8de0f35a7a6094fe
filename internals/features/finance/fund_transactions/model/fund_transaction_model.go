package model

import (
	"time"

	"github.com/shopspring/decimal"

	"rumahmengaji_backend/internals/helpers/dbtime"
)

// FundTransactionModel: dana masuk (derma, wakaf, infak, sedekah, yuran).
type FundTransactionModel struct {
	FundTransactionID            uint            `gorm:"column:fund_transaction_id;primaryKey" json:"fund_transaction_id"`
	FundTransactionStudyCenterID uint            `gorm:"column:fund_transaction_study_center_id;not null;index" json:"fund_transaction_study_center_id"`
	FundTransactionFundType      string          `gorm:"column:fund_transaction_fund_type;size:10;not null" json:"fund_transaction_fund_type"`
	FundTransactionAmount        decimal.Decimal `gorm:"column:fund_transaction_amount;type:numeric(10,2);not null" json:"fund_transaction_amount"`
	FundTransactionDescription   string          `gorm:"column:fund_transaction_description;type:text;not null" json:"fund_transaction_description"`

	FundTransactionContributorName  *string `gorm:"column:fund_transaction_contributor_name;size:255" json:"fund_transaction_contributor_name,omitempty"`
	FundTransactionContributorPhone *string `gorm:"column:fund_transaction_contributor_phone;size:20" json:"fund_transaction_contributor_phone,omitempty"`

	FundTransactionDate       dbtime.Date `gorm:"column:fund_transaction_date;type:date;not null;index" json:"fund_transaction_date"`
	FundTransactionRecordedBy uint        `gorm:"column:fund_transaction_recorded_by;not null" json:"fund_transaction_recorded_by"`
	FundTransactionCreatedAt  time.Time   `gorm:"column:fund_transaction_created_at;autoCreateTime" json:"fund_transaction_created_at"`
}

func (FundTransactionModel) TableName() string { return "fund_transactions" }
