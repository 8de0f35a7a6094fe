package model

import (
	"time"

	"github.com/shopspring/decimal"

	"rumahmengaji_backend/internals/helpers/dbtime"
)

// MaterialDistributionModel: penyaluran/penjualan bahan (Quran, buku tulis, dll).
// is_sale = true ⇔ price ada dan > 0.
type MaterialDistributionModel struct {
	MaterialDistributionID            uint   `gorm:"column:material_distribution_id;primaryKey" json:"material_distribution_id"`
	MaterialDistributionStudyCenterID uint   `gorm:"column:material_distribution_study_center_id;not null;index" json:"material_distribution_study_center_id"`
	MaterialDistributionMaterialType  string `gorm:"column:material_distribution_material_type;size:10;not null" json:"material_distribution_material_type"`
	MaterialDistributionItemName      string `gorm:"column:material_distribution_item_name;type:text;not null" json:"material_distribution_item_name"`
	MaterialDistributionQuantity      int    `gorm:"column:material_distribution_quantity;not null" json:"material_distribution_quantity"`

	MaterialDistributionRecipientID *uint       `gorm:"column:material_distribution_recipient_id" json:"material_distribution_recipient_id,omitempty"`
	MaterialDistributionDate        dbtime.Date `gorm:"column:material_distribution_date;type:date;not null;index" json:"material_distribution_date"`

	MaterialDistributionIsSale bool                `gorm:"column:material_distribution_is_sale;not null;default:false" json:"material_distribution_is_sale"`
	MaterialDistributionPrice  decimal.NullDecimal `gorm:"column:material_distribution_price;type:numeric(10,2)" json:"material_distribution_price"`
	MaterialDistributionNotes  *string             `gorm:"column:material_distribution_notes;type:text" json:"material_distribution_notes,omitempty"`

	MaterialDistributionRecordedBy uint      `gorm:"column:material_distribution_recorded_by;not null" json:"material_distribution_recorded_by"`
	MaterialDistributionCreatedAt  time.Time `gorm:"column:material_distribution_created_at;autoCreateTime" json:"material_distribution_created_at"`
}

func (MaterialDistributionModel) TableName() string { return "material_distributions" }
