package model

import (
	"time"

	"rumahmengaji_backend/internals/constants"
)

// UserModel merepresentasikan tabel users
type UserModel struct {
	ID        uint           `gorm:"primaryKey;column:id" json:"id"`
	Email     string         `gorm:"column:email;size:255;not null;uniqueIndex:uq_users_email" json:"email"`
	Password  string         `gorm:"column:password_hash;not null" json:"-"`
	FullName  string         `gorm:"column:full_name;size:150;not null" json:"full_name"`
	Phone     *string        `gorm:"column:phone;size:30" json:"phone"`
	Role      constants.Role `gorm:"column:role;type:varchar(20);not null" json:"role"`
	IsActive  bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
