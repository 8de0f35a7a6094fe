package model

import (
	"time"

	"rumahmengaji_backend/internals/helpers/dbtime"
)

// ClassModel: jadwal mingguan satu pengajar di satu pusat.
// Jam dalam [start, end) pada hari yang sama.
type ClassModel struct {
	ClassID            uint    `gorm:"column:class_id;primaryKey" json:"class_id"`
	ClassStudyCenterID uint    `gorm:"column:class_study_center_id;not null;index" json:"class_study_center_id"`
	ClassName          string  `gorm:"column:class_name;size:255;not null" json:"class_name"`
	ClassDescription   *string `gorm:"column:class_description;type:text" json:"class_description,omitempty"`
	ClassType          string  `gorm:"column:class_type;size:20;not null" json:"class_type"`

	ClassTeacherID   uint       `gorm:"column:class_teacher_id;not null;index:idx_classes_teacher_day,priority:1" json:"class_teacher_id"`
	ClassScheduleDay string     `gorm:"column:class_schedule_day;size:10;not null;index:idx_classes_teacher_day,priority:2" json:"class_schedule_day"`
	ClassStartTime   dbtime.Tod `gorm:"column:class_start_time;type:time;not null" json:"class_start_time"`
	ClassEndTime     dbtime.Tod `gorm:"column:class_end_time;type:time;not null" json:"class_end_time"`
	ClassCapacity    int        `gorm:"column:class_capacity;not null;default:20" json:"class_capacity"`

	ClassIsActive  bool      `gorm:"column:class_is_active;not null;default:true" json:"class_is_active"`
	ClassCreatedAt time.Time `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
}

func (ClassModel) TableName() string { return "classes" }
