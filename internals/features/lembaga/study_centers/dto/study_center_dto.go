package dto

import (
	"strings"
	"time"

	"rumahmengaji_backend/internals/features/lembaga/study_centers/model"
)

/* =========================
   REQUEST
   ========================= */

type CreateStudyCenterRequest struct {
	Name               string  `json:"name" validate:"required,max=150"`
	Address            string  `json:"address" validate:"required"`
	Phone              *string `json:"phone" validate:"omitempty,max=30"`
	Email              *string `json:"email" validate:"omitempty,email,max=255"`
	RegistrationNumber *string `json:"registration_number" validate:"omitempty,max=100"`
	AdminID            uint    `json:"admin_id" validate:"required"`
}

func (r *CreateStudyCenterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = trimPtr(r.Phone)
	r.RegistrationNumber = trimPtr(r.RegistrationNumber)
	if r.Email = trimPtr(r.Email); r.Email != nil {
		v := strings.ToLower(*r.Email)
		r.Email = &v
	}
}

func (r *CreateStudyCenterRequest) ToModel() *model.StudyCenterModel {
	return &model.StudyCenterModel{
		StudyCenterName:               r.Name,
		StudyCenterAddress:            r.Address,
		StudyCenterPhone:              r.Phone,
		StudyCenterEmail:              r.Email,
		StudyCenterRegistrationNumber: r.RegistrationNumber,
		StudyCenterAdminID:            r.AdminID,
		StudyCenterIsActive:           true,
	}
}

/* =========================
   RESPONSE
   ========================= */

type StudyCenterResponse struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Address            string    `json:"address"`
	Phone              *string   `json:"phone"`
	Email              *string   `json:"email"`
	RegistrationNumber *string   `json:"registration_number"`
	AdminID            uint      `json:"admin_id"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromModel(m *model.StudyCenterModel) StudyCenterResponse {
	return StudyCenterResponse{
		ID:                 m.StudyCenterID,
		Name:               m.StudyCenterName,
		Address:            m.StudyCenterAddress,
		Phone:              m.StudyCenterPhone,
		Email:              m.StudyCenterEmail,
		RegistrationNumber: m.StudyCenterRegistrationNumber,
		AdminID:            m.StudyCenterAdminID,
		IsActive:           m.StudyCenterIsActive,
		CreatedAt:          m.StudyCenterCreatedAt,
		UpdatedAt:          m.StudyCenterUpdatedAt,
	}
}

func FromModels(list []model.StudyCenterModel) []StudyCenterResponse {
	out := make([]StudyCenterResponse, 0, len(list))
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
