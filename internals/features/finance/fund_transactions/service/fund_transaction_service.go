package service

import (
	"context"
	"slices"

	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/finance/fund_transactions/dto"
	"rumahmengaji_backend/internals/features/finance/fund_transactions/model"
	centerService "rumahmengaji_backend/internals/features/lembaga/study_centers/service"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/apperror"
)

type FundTransactionService struct {
	DB *gorm.DB
}

func NewFundTransactionService(db *gorm.DB) *FundTransactionService {
	return &FundTransactionService{DB: db}
}

func (s *FundTransactionService) Create(ctx context.Context, req dto.CreateFundTransactionRequest) (*model.FundTransactionModel, error) {
	req.Normalize()
	if !slices.Contains(constants.FundTypes, req.FundType) {
		return nil, apperror.Newf(apperror.KindValidation, "fund_type %q is not supported", req.FundType)
	}
	if err := helper.ValidateAmount("amount", req.Amount); err != nil {
		return nil, err
	}
	if req.Description == "" {
		return nil, apperror.Validation("description is required")
	}
	if !req.TransactionDate.Valid() {
		return nil, apperror.Validation("transaction_date is required")
	}
	if req.RecordedBy == 0 {
		return nil, apperror.Validation("recorded_by is required")
	}

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := centerService.FindActive(tx, req.StudyCenterID); err != nil {
			return err
		}
		if _, err := userService.Find(tx, req.RecordedBy); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindDuplicateRecord, "fund transaction already exists")
	}
	return m, nil
}

// List: transaksi terbaru dulu, tanggal inklusif.
func (s *FundTransactionService) List(ctx context.Context, q dto.ListFundTransactionsQuery) ([]model.FundTransactionModel, int64, error) {
	q.Limit, q.Offset = helper.ClampLimitOffset(q.Limit, q.Offset)
	if q.FundType != "" && !slices.Contains(constants.FundTypes, q.FundType) {
		return nil, 0, apperror.Newf(apperror.KindValidation, "fund_type %q is not supported", q.FundType)
	}

	db := s.DB.WithContext(ctx).Model(&model.FundTransactionModel{})
	if q.StudyCenterID != nil {
		db = db.Where("fund_transaction_study_center_id = ?", *q.StudyCenterID)
	}
	if q.FundType != "" {
		db = db.Where("fund_transaction_fund_type = ?", q.FundType)
	}
	if q.DateFrom.Valid() {
		db = db.Where("fund_transaction_date >= ?", q.DateFrom)
	}
	if q.DateTo.Valid() {
		db = db.Where("fund_transaction_date <= ?", q.DateTo)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "count fund transactions")
	}
	var rows []model.FundTransactionModel
	if err := db.Order("fund_transaction_date DESC, fund_transaction_id DESC").
		Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "list fund transactions")
	}
	return rows, total, nil
}
