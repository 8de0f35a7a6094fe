package service

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	centerService "rumahmengaji_backend/internals/features/lembaga/study_centers/service"
	"rumahmengaji_backend/internals/features/materials/distributions/dto"
	"rumahmengaji_backend/internals/features/materials/distributions/model"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/apperror"
)

type MaterialDistributionService struct {
	DB *gorm.DB
}

func NewMaterialDistributionService(db *gorm.DB) *MaterialDistributionService {
	return &MaterialDistributionService{DB: db}
}

// CheckPrice: jual wajib ada harga > 0, sumbangan tidak boleh ada harga.
func CheckPrice(isSale bool, p decimal.NullDecimal) error {
	if isSale {
		if !p.Valid || !p.Decimal.IsPositive() {
			return apperror.New(apperror.KindInvalidPrice, "price must be provided and positive for sales")
		}
		return helper.ValidateAmount("price", p.Decimal)
	}
	if p.Valid {
		return apperror.New(apperror.KindUnexpectedPrice, "price must not be provided for non-sale distributions")
	}
	return nil
}

func (s *MaterialDistributionService) Create(ctx context.Context, req dto.CreateMaterialDistributionRequest) (*model.MaterialDistributionModel, error) {
	req.Normalize()
	switch req.MaterialType {
	case constants.MaterialQuran, constants.MaterialNotebook, constants.MaterialOther:
	default:
		return nil, apperror.Newf(apperror.KindValidation, "material_type %q is not supported", req.MaterialType)
	}
	if req.ItemName == "" {
		return nil, apperror.Validation("item_name is required")
	}
	if req.Quantity <= 0 {
		return nil, apperror.Validation("quantity must be a positive integer")
	}
	if !req.DistributionDate.Valid() {
		return nil, apperror.Validation("distribution_date is required")
	}
	if req.RecordedBy == 0 {
		return nil, apperror.Validation("recorded_by is required")
	}

	if err := CheckPrice(req.IsSale, req.Price); err != nil {
		return nil, err
	}

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := centerService.FindActive(tx, req.StudyCenterID); err != nil {
			return err
		}
		if _, err := userService.FindActive(tx, req.RecordedBy); err != nil {
			return err
		}
		if req.RecipientID != nil {
			if _, err := userService.FindActive(tx, *req.RecipientID); err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindDuplicateRecord, "material distribution already exists")
	}
	return m, nil
}

func (s *MaterialDistributionService) List(ctx context.Context, q dto.ListMaterialDistributionsQuery) ([]model.MaterialDistributionModel, int64, error) {
	q.Limit, q.Offset = helper.ClampLimitOffset(q.Limit, q.Offset)

	db := s.DB.WithContext(ctx).Model(&model.MaterialDistributionModel{})
	if q.StudyCenterID != nil {
		db = db.Where("material_distribution_study_center_id = ?", *q.StudyCenterID)
	}
	if q.MaterialType != "" {
		db = db.Where("material_distribution_material_type = ?", q.MaterialType)
	}
	if q.DateFrom.Valid() {
		db = db.Where("material_distribution_date >= ?", q.DateFrom)
	}
	if q.DateTo.Valid() {
		db = db.Where("material_distribution_date <= ?", q.DateTo)
	}
	if q.IsSale != nil {
		db = db.Where("material_distribution_is_sale = ?", *q.IsSale)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "count material distributions")
	}
	var rows []model.MaterialDistributionModel
	if err := db.Order("material_distribution_created_at DESC, material_distribution_id DESC").
		Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "list material distributions")
	}
	return rows, total, nil
}
