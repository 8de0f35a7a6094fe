package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClassEnrollmentModel: keanggotaan pelajar di kelas.
// Maksimal satu baris aktif per (class, student), dijaga index parsial.
type ClassEnrollmentModel struct {
	ClassEnrollmentID         uint      `gorm:"column:class_enrollment_id;primaryKey" json:"class_enrollment_id"`
	ClassEnrollmentClassID    uint      `gorm:"column:class_enrollment_class_id;not null;index" json:"class_enrollment_class_id"`
	ClassEnrollmentStudentID  uint      `gorm:"column:class_enrollment_student_id;not null;index" json:"class_enrollment_student_id"`
	ClassEnrollmentEnrolledAt time.Time `gorm:"column:class_enrollment_enrolled_at;not null" json:"class_enrollment_enrolled_at"`

	// Snapshot data pelajar saat mendaftar (nama, IC)
	ClassEnrollmentStudentSnapshot datatypes.JSONMap `gorm:"column:class_enrollment_student_snapshot" json:"class_enrollment_student_snapshot"`

	ClassEnrollmentIsActive  bool      `gorm:"column:class_enrollment_is_active;not null;default:true" json:"class_enrollment_is_active"`
	ClassEnrollmentCreatedAt time.Time `gorm:"column:class_enrollment_created_at;autoCreateTime" json:"class_enrollment_created_at"`
	ClassEnrollmentUpdatedAt time.Time `gorm:"column:class_enrollment_updated_at;autoUpdateTime" json:"class_enrollment_updated_at"`
}

func (ClassEnrollmentModel) TableName() string { return "class_enrollments" }

func (m *ClassEnrollmentModel) BeforeSave(tx *gorm.DB) error {
	if m.ClassEnrollmentStudentSnapshot == nil {
		m.ClassEnrollmentStudentSnapshot = datatypes.JSONMap{}
	}
	return nil
}
