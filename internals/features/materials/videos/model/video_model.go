package model

import "time"

type VideoModel struct {
	VideoID            uint    `gorm:"column:video_id;primaryKey" json:"video_id"`
	VideoStudyCenterID uint    `gorm:"column:video_study_center_id;not null;index" json:"video_study_center_id"`
	VideoTitle         string  `gorm:"column:video_title;type:text;not null" json:"video_title"`
	VideoDescription   *string `gorm:"column:video_description;type:text" json:"video_description,omitempty"`
	VideoFileURL       string  `gorm:"column:video_file_url;type:text;not null" json:"video_file_url"`
	VideoDuration      *int    `gorm:"column:video_duration" json:"video_duration,omitempty"` // detik
	VideoUploadedBy    uint    `gorm:"column:video_uploaded_by;not null" json:"video_uploaded_by"`

	VideoIsActive  bool      `gorm:"column:video_is_active;not null;default:true" json:"video_is_active"`
	VideoCreatedAt time.Time `gorm:"column:video_created_at;autoCreateTime" json:"video_created_at"`
	VideoUpdatedAt time.Time `gorm:"column:video_updated_at;autoUpdateTime" json:"video_updated_at"`
}

func (VideoModel) TableName() string { return "videos" }
