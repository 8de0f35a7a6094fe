package model

import (
	"time"

	"rumahmengaji_backend/internals/helpers/dbtime"
)

// TeacherModel: profil pengajar, satu per user.
type TeacherModel struct {
	TeacherID             uint        `gorm:"column:teacher_id;primaryKey" json:"teacher_id"`
	TeacherUserID         uint        `gorm:"column:teacher_user_id;not null;uniqueIndex:uq_teachers_user" json:"teacher_user_id"`
	TeacherStudyCenterID  uint        `gorm:"column:teacher_study_center_id;not null;index" json:"teacher_study_center_id"`
	TeacherICNumber       string      `gorm:"column:teacher_ic_number;size:20;not null;uniqueIndex:uq_teachers_ic_number" json:"teacher_ic_number"`
	TeacherDateOfBirth    dbtime.Date `gorm:"column:teacher_date_of_birth;type:date;not null" json:"teacher_date_of_birth"`
	TeacherAddress        string      `gorm:"column:teacher_address;type:text;not null" json:"teacher_address"`
	TeacherQualifications *string     `gorm:"column:teacher_qualifications;type:text" json:"teacher_qualifications,omitempty"`

	// permit mengajar dari JAIJ (opsional)
	TeacherJaijPermitNumber *string     `gorm:"column:teacher_jaij_permit_number;size:100" json:"teacher_jaij_permit_number,omitempty"`
	TeacherJaijPermitExpiry dbtime.Date `gorm:"column:teacher_jaij_permit_expiry;type:date" json:"teacher_jaij_permit_expiry"`

	TeacherIsActive  bool      `gorm:"column:teacher_is_active;not null;default:true" json:"teacher_is_active"`
	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
