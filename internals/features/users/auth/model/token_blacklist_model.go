package model

import "time"

// TokenBlacklist menyimpan HMAC access token yang sudah logout.
type TokenBlacklist struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Token     string    `gorm:"column:token;type:text;not null;uniqueIndex:uq_token_blacklist_token" json:"-"`
	ExpiredAt time.Time `gorm:"column:expired_at;not null;index" json:"expired_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
