package model

import (
	"time"

	"rumahmengaji_backend/internals/helpers/dbtime"
)

// StudentModel: profil pelajar, hanya untuk user ber-role pelajar.
type StudentModel struct {
	StudentID            uint        `gorm:"column:student_id;primaryKey" json:"student_id"`
	StudentUserID        uint        `gorm:"column:student_user_id;not null;uniqueIndex:uq_students_user" json:"student_user_id"`
	StudentStudyCenterID uint        `gorm:"column:student_study_center_id;not null;index" json:"student_study_center_id"`
	StudentICNumber      string      `gorm:"column:student_ic_number;size:20;not null;uniqueIndex:uq_students_ic_number" json:"student_ic_number"`
	StudentDateOfBirth   dbtime.Date `gorm:"column:student_date_of_birth;type:date;not null" json:"student_date_of_birth"`
	StudentAddress       string      `gorm:"column:student_address;type:text;not null" json:"student_address"`

	// wali / kontak darurat
	StudentParentName       *string `gorm:"column:student_parent_name;size:255" json:"student_parent_name,omitempty"`
	StudentParentPhone      *string `gorm:"column:student_parent_phone;size:20" json:"student_parent_phone,omitempty"`
	StudentEmergencyContact *string `gorm:"column:student_emergency_contact;size:20" json:"student_emergency_contact,omitempty"`

	StudentIsActive  bool      `gorm:"column:student_is_active;not null;default:true" json:"student_is_active"`
	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
