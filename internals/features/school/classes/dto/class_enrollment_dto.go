package dto

import (
	"time"

	"rumahmengaji_backend/internals/features/school/classes/model"
)

type EnrollStudentRequest struct {
	StudentID uint `json:"student_id" validate:"required"`
}

type ClassEnrollmentResponse struct {
	ID              uint           `json:"id"`
	ClassID         uint           `json:"class_id"`
	StudentID       uint           `json:"student_id"`
	EnrolledAt      time.Time      `json:"enrolled_at"`
	StudentSnapshot map[string]any `json:"student_snapshot"`
	IsActive        bool           `json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func FromEnrollmentModel(m *model.ClassEnrollmentModel) ClassEnrollmentResponse {
	snap := map[string]any(m.ClassEnrollmentStudentSnapshot)
	if snap == nil {
		snap = map[string]any{}
	}
	return ClassEnrollmentResponse{
		ID:              m.ClassEnrollmentID,
		ClassID:         m.ClassEnrollmentClassID,
		StudentID:       m.ClassEnrollmentStudentID,
		EnrolledAt:      m.ClassEnrollmentEnrolledAt,
		StudentSnapshot: snap,
		IsActive:        m.ClassEnrollmentIsActive,
		CreatedAt:       m.ClassEnrollmentCreatedAt,
		UpdatedAt:       m.ClassEnrollmentUpdatedAt,
	}
}

func FromEnrollmentModels(list []model.ClassEnrollmentModel) []ClassEnrollmentResponse {
	out := make([]ClassEnrollmentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromEnrollmentModel(&list[i]))
	}
	return out
}
