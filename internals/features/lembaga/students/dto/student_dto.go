package dto

import (
	"strings"
	"time"

	"rumahmengaji_backend/internals/features/lembaga/students/model"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

type CreateStudentRequest struct {
	UserID           uint        `json:"user_id" validate:"required"`
	StudyCenterID    uint        `json:"study_center_id" validate:"required"`
	ICNumber         string      `json:"ic_number" validate:"required,max=20"`
	DateOfBirth      dbtime.Date `json:"date_of_birth"`
	Address          string      `json:"address" validate:"required"`
	ParentName       *string     `json:"parent_name" validate:"omitempty,max=255"`
	ParentPhone      *string     `json:"parent_phone" validate:"omitempty,max=20"`
	EmergencyContact *string     `json:"emergency_contact" validate:"omitempty,max=20"`
}

func (r *CreateStudentRequest) Normalize() {
	r.ICNumber = strings.TrimSpace(r.ICNumber)
	r.Address = strings.TrimSpace(r.Address)
	r.ParentName = trimPtr(r.ParentName)
	r.ParentPhone = trimPtr(r.ParentPhone)
	r.EmergencyContact = trimPtr(r.EmergencyContact)
}

func (r *CreateStudentRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentUserID:           r.UserID,
		StudentStudyCenterID:    r.StudyCenterID,
		StudentICNumber:         r.ICNumber,
		StudentDateOfBirth:      r.DateOfBirth,
		StudentAddress:          r.Address,
		StudentParentName:       r.ParentName,
		StudentParentPhone:      r.ParentPhone,
		StudentEmergencyContact: r.EmergencyContact,
		StudentIsActive:         true,
	}
}

type ListStudentsQuery struct {
	StudyCenterID *uint
	IsActive      *bool
	Limit         int
	Offset        int
}

type StudentResponse struct {
	ID               uint        `json:"id"`
	UserID           uint        `json:"user_id"`
	StudyCenterID    uint        `json:"study_center_id"`
	ICNumber         string      `json:"ic_number"`
	DateOfBirth      dbtime.Date `json:"date_of_birth"`
	Address          string      `json:"address"`
	ParentName       *string     `json:"parent_name"`
	ParentPhone      *string     `json:"parent_phone"`
	EmergencyContact *string     `json:"emergency_contact"`
	IsActive         bool        `json:"is_active"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func FromModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		ID:               m.StudentID,
		UserID:           m.StudentUserID,
		StudyCenterID:    m.StudentStudyCenterID,
		ICNumber:         m.StudentICNumber,
		DateOfBirth:      m.StudentDateOfBirth,
		Address:          m.StudentAddress,
		ParentName:       m.StudentParentName,
		ParentPhone:      m.StudentParentPhone,
		EmergencyContact: m.StudentEmergencyContact,
		IsActive:         m.StudentIsActive,
		CreatedAt:        m.StudentCreatedAt,
		UpdatedAt:        m.StudentUpdatedAt,
	}
}

func FromModels(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
