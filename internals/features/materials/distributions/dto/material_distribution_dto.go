package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rumahmengaji_backend/internals/features/materials/distributions/model"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

type CreateMaterialDistributionRequest struct {
	StudyCenterID    uint                `json:"study_center_id" validate:"required"`
	MaterialType     string              `json:"material_type" validate:"required,oneof=quran notebook other"`
	ItemName         string              `json:"item_name" validate:"required"`
	Quantity         int                 `json:"quantity"`
	RecipientID      *uint               `json:"recipient_id"`
	DistributionDate dbtime.Date         `json:"distribution_date"`
	IsSale           bool                `json:"is_sale"`
	Price            decimal.NullDecimal `json:"price"`
	Notes            *string             `json:"notes"`
	RecordedBy       uint                `json:"recorded_by"`
}

func (r *CreateMaterialDistributionRequest) Normalize() {
	r.MaterialType = strings.ToLower(strings.TrimSpace(r.MaterialType))
	r.ItemName = strings.TrimSpace(r.ItemName)
	if r.Notes != nil {
		n := strings.TrimSpace(*r.Notes)
		if n == "" {
			r.Notes = nil
		} else {
			r.Notes = &n
		}
	}
	if r.RecipientID != nil && *r.RecipientID == 0 {
		r.RecipientID = nil
	}
}

func (r *CreateMaterialDistributionRequest) ToModel() *model.MaterialDistributionModel {
	return &model.MaterialDistributionModel{
		MaterialDistributionStudyCenterID: r.StudyCenterID,
		MaterialDistributionMaterialType:  r.MaterialType,
		MaterialDistributionItemName:      r.ItemName,
		MaterialDistributionQuantity:      r.Quantity,
		MaterialDistributionRecipientID:   r.RecipientID,
		MaterialDistributionDate:          r.DistributionDate,
		MaterialDistributionIsSale:        r.IsSale,
		MaterialDistributionPrice:         r.Price,
		MaterialDistributionNotes:         r.Notes,
		MaterialDistributionRecordedBy:    r.RecordedBy,
	}
}

type ListMaterialDistributionsQuery struct {
	StudyCenterID *uint
	MaterialType  string
	DateFrom      dbtime.Date
	DateTo        dbtime.Date
	IsSale        *bool
	Limit         int
	Offset        int
}

type MaterialDistributionResponse struct {
	ID               uint        `json:"id"`
	StudyCenterID    uint        `json:"study_center_id"`
	MaterialType     string      `json:"material_type"`
	ItemName         string      `json:"item_name"`
	Quantity         int         `json:"quantity"`
	RecipientID      *uint       `json:"recipient_id"`
	DistributionDate dbtime.Date `json:"distribution_date"`
	IsSale           bool        `json:"is_sale"`
	Price            *string     `json:"price"`
	Notes            *string     `json:"notes"`
	RecordedBy       uint        `json:"recorded_by"`
	CreatedAt        time.Time   `json:"created_at"`
}

func FromModel(m *model.MaterialDistributionModel) MaterialDistributionResponse {
	return MaterialDistributionResponse{
		ID:               m.MaterialDistributionID,
		StudyCenterID:    m.MaterialDistributionStudyCenterID,
		MaterialType:     m.MaterialDistributionMaterialType,
		ItemName:         m.MaterialDistributionItemName,
		Quantity:         m.MaterialDistributionQuantity,
		RecipientID:      m.MaterialDistributionRecipientID,
		DistributionDate: m.MaterialDistributionDate,
		IsSale:           m.MaterialDistributionIsSale,
		Price:            helper.NullMoney(m.MaterialDistributionPrice),
		Notes:            m.MaterialDistributionNotes,
		RecordedBy:       m.MaterialDistributionRecordedBy,
		CreatedAt:        m.MaterialDistributionCreatedAt,
	}
}

func FromModels(list []model.MaterialDistributionModel) []MaterialDistributionResponse {
	out := make([]MaterialDistributionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
