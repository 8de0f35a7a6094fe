package model

import (
	"time"

	"rumahmengaji_backend/internals/helpers/dbtime"
)

// AttendanceModel: satu baris per (class, student, date).
type AttendanceModel struct {
	AttendanceID        uint        `gorm:"column:attendance_id;primaryKey" json:"attendance_id"`
	AttendanceClassID   uint        `gorm:"column:attendance_class_id;not null;uniqueIndex:uq_attendance_class_student_date,priority:1" json:"attendance_class_id"`
	AttendanceStudentID uint        `gorm:"column:attendance_student_id;not null;uniqueIndex:uq_attendance_class_student_date,priority:2" json:"attendance_student_id"`
	AttendanceDate      dbtime.Date `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_class_student_date,priority:3" json:"attendance_date"`
	AttendanceStatus    string      `gorm:"column:attendance_status;size:10;not null" json:"attendance_status"`
	AttendanceNotes     *string     `gorm:"column:attendance_notes;type:text" json:"attendance_notes,omitempty"`

	AttendanceRecordedBy uint      `gorm:"column:attendance_recorded_by;not null" json:"attendance_recorded_by"`
	AttendanceRecordedAt time.Time `gorm:"column:attendance_recorded_at;not null" json:"attendance_recorded_at"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }
