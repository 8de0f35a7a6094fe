package dto

import (
	"strings"
	"time"

	"rumahmengaji_backend/internals/constants"
	uModel "rumahmengaji_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest: create by admin
type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	FullName string  `json:"full_name" validate:"required,max=150"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Role     string  `json:"role" validate:"required,oneof=administrator admin_pusat pengurus_pusat pengajar_pusat pelajar"`
}

// Normalize: trim & lowercase email
func (r *CreateUserRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Role = strings.TrimSpace(r.Role)
	r.Phone = trimPtr(r.Phone)
}

// ToModel: password di-hash di service
func (r *CreateUserRequest) ToModel(passwordHash string) *uModel.UserModel {
	return &uModel.UserModel{
		Email:    r.Email,
		Password: passwordHash,
		FullName: r.FullName,
		Phone:    r.Phone,
		Role:     constants.Role(r.Role),
		IsActive: true,
	}
}

// UpdateUserRequest: partial update (pointer = field dikirim)
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=150"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Role     *string `json:"role" validate:"omitempty,oneof=administrator admin_pusat pengurus_pusat pengajar_pusat pelajar"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
	if r.Role != nil {
		v := strings.TrimSpace(*r.Role)
		r.Role = &v
	}
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		r.Phone = &v
	}
}

// Apply: tulis field yang dikirim ke model
func (r *UpdateUserRequest) Apply(m *uModel.UserModel) {
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Phone != nil {
		if *r.Phone == "" {
			m.Phone = nil // string kosong = hapus
		} else {
			v := *r.Phone
			m.Phone = &v
		}
	}
	if r.Role != nil {
		m.Role = constants.Role(*r.Role)
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

// ListUsersQuery: filter GET /users
type ListUsersQuery struct {
	Role     *string
	IsActive *bool
	Limit    int
	Offset   int
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m *uModel.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Email:     m.Email,
		FullName:  m.FullName,
		Phone:     m.Phone,
		Role:      string(m.Role),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(list []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
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
