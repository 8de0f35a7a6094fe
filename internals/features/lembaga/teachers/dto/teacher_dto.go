package dto

import (
	"strings"
	"time"

	"rumahmengaji_backend/internals/features/lembaga/teachers/model"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

type CreateTeacherRequest struct {
	UserID           uint        `json:"user_id" validate:"required"`
	StudyCenterID    uint        `json:"study_center_id" validate:"required"`
	ICNumber         string      `json:"ic_number" validate:"required,max=20"`
	DateOfBirth      dbtime.Date `json:"date_of_birth"`
	Address          string      `json:"address" validate:"required"`
	Qualifications   *string     `json:"qualifications"`
	JaijPermitNumber *string     `json:"jaij_permit_number" validate:"omitempty,max=100"`
	JaijPermitExpiry dbtime.Date `json:"jaij_permit_expiry"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.ICNumber = strings.TrimSpace(r.ICNumber)
	r.Address = strings.TrimSpace(r.Address)
	r.Qualifications = trimPtr(r.Qualifications)
	r.JaijPermitNumber = trimPtr(r.JaijPermitNumber)
}

func (r *CreateTeacherRequest) ToModel() *model.TeacherModel {
	return &model.TeacherModel{
		TeacherUserID:           r.UserID,
		TeacherStudyCenterID:    r.StudyCenterID,
		TeacherICNumber:         r.ICNumber,
		TeacherDateOfBirth:      r.DateOfBirth,
		TeacherAddress:          r.Address,
		TeacherQualifications:   r.Qualifications,
		TeacherJaijPermitNumber: r.JaijPermitNumber,
		TeacherJaijPermitExpiry: r.JaijPermitExpiry,
		TeacherIsActive:         true,
	}
}

type ListTeachersQuery struct {
	StudyCenterID *uint
	IsActive      *bool
	Limit         int
	Offset        int
}

type TeacherResponse struct {
	ID               uint        `json:"id"`
	UserID           uint        `json:"user_id"`
	StudyCenterID    uint        `json:"study_center_id"`
	ICNumber         string      `json:"ic_number"`
	DateOfBirth      dbtime.Date `json:"date_of_birth"`
	Address          string      `json:"address"`
	Qualifications   *string     `json:"qualifications"`
	JaijPermitNumber *string     `json:"jaij_permit_number"`
	JaijPermitExpiry dbtime.Date `json:"jaij_permit_expiry"`
	IsActive         bool        `json:"is_active"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func FromModel(m *model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		ID:               m.TeacherID,
		UserID:           m.TeacherUserID,
		StudyCenterID:    m.TeacherStudyCenterID,
		ICNumber:         m.TeacherICNumber,
		DateOfBirth:      m.TeacherDateOfBirth,
		Address:          m.TeacherAddress,
		Qualifications:   m.TeacherQualifications,
		JaijPermitNumber: m.TeacherJaijPermitNumber,
		JaijPermitExpiry: m.TeacherJaijPermitExpiry,
		IsActive:         m.TeacherIsActive,
		CreatedAt:        m.TeacherCreatedAt,
		UpdatedAt:        m.TeacherUpdatedAt,
	}
}

func FromModels(list []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
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
