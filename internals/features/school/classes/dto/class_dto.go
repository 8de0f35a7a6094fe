package dto

import (
	"strings"
	"time"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/school/classes/model"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

type CreateClassRequest struct {
	StudyCenterID uint       `json:"study_center_id" validate:"required"`
	Name          string     `json:"name" validate:"required,max=255"`
	Description   *string    `json:"description"`
	ClassType     string     `json:"class_type" validate:"required,oneof=physical online on_call"`
	TeacherID     uint       `json:"teacher_id" validate:"required"`
	ScheduleDay   string     `json:"schedule_day" validate:"required"`
	StartTime     dbtime.Tod `json:"start_time"`
	EndTime       dbtime.Tod `json:"end_time"`
	Capacity      *int       `json:"capacity"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ClassType = strings.ToLower(strings.TrimSpace(r.ClassType))
	r.ScheduleDay = strings.ToLower(strings.TrimSpace(r.ScheduleDay))
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

// ToModel: capacity kosong → default.
func (r *CreateClassRequest) ToModel() *model.ClassModel {
	capacity := constants.DefaultClassCapacity
	if r.Capacity != nil {
		capacity = *r.Capacity
	}
	return &model.ClassModel{
		ClassStudyCenterID: r.StudyCenterID,
		ClassName:          r.Name,
		ClassDescription:   r.Description,
		ClassType:          r.ClassType,
		ClassTeacherID:     r.TeacherID,
		ClassScheduleDay:   r.ScheduleDay,
		ClassStartTime:     r.StartTime,
		ClassEndTime:       r.EndTime,
		ClassCapacity:      capacity,
		ClassIsActive:      true,
	}
}

type ListClassesQuery struct {
	StudyCenterID *uint
	TeacherID     *uint
	ScheduleDay   string
	IsActive      *bool
	Limit         int
	Offset        int
}

type ClassResponse struct {
	ID            uint       `json:"id"`
	StudyCenterID uint       `json:"study_center_id"`
	Name          string     `json:"name"`
	Description   *string    `json:"description"`
	ClassType     string     `json:"class_type"`
	TeacherID     uint       `json:"teacher_id"`
	ScheduleDay   string     `json:"schedule_day"`
	StartTime     dbtime.Tod `json:"start_time"`
	EndTime       dbtime.Tod `json:"end_time"`
	Capacity      int        `json:"capacity"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromModel(m *model.ClassModel) ClassResponse {
	return ClassResponse{
		ID:            m.ClassID,
		StudyCenterID: m.ClassStudyCenterID,
		Name:          m.ClassName,
		Description:   m.ClassDescription,
		ClassType:     m.ClassType,
		TeacherID:     m.ClassTeacherID,
		ScheduleDay:   m.ClassScheduleDay,
		StartTime:     m.ClassStartTime,
		EndTime:       m.ClassEndTime,
		Capacity:      m.ClassCapacity,
		IsActive:      m.ClassIsActive,
		CreatedAt:     m.ClassCreatedAt,
		UpdatedAt:     m.ClassUpdatedAt,
	}
}

func FromModels(list []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
