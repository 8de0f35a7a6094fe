package model

import "time"

// StudyCenterModel = pusat mengaji (tenant). Semua data lain menunjuk ke sini.
type StudyCenterModel struct {
	StudyCenterID                 uint    `gorm:"column:study_center_id;primaryKey" json:"study_center_id"`
	StudyCenterName               string  `gorm:"column:study_center_name;size:150;not null" json:"study_center_name"`
	StudyCenterAddress            string  `gorm:"column:study_center_address;type:text;not null" json:"study_center_address"`
	StudyCenterPhone              *string `gorm:"column:study_center_phone;size:30" json:"study_center_phone,omitempty"`
	StudyCenterEmail              *string `gorm:"column:study_center_email;size:255" json:"study_center_email,omitempty"`
	StudyCenterRegistrationNumber *string `gorm:"column:study_center_registration_number;size:100" json:"study_center_registration_number,omitempty"`
	StudyCenterAdminID            uint    `gorm:"column:study_center_admin_id;not null;index" json:"study_center_admin_id"`
	StudyCenterIsActive           bool    `gorm:"column:study_center_is_active;not null;default:true" json:"study_center_is_active"`

	StudyCenterCreatedAt time.Time `gorm:"column:study_center_created_at;autoCreateTime" json:"study_center_created_at"`
	StudyCenterUpdatedAt time.Time `gorm:"column:study_center_updated_at;autoUpdateTime" json:"study_center_updated_at"`
}

func (StudyCenterModel) TableName() string { return "study_centers" }
