package dto

import (
	"strings"
	"time"

	"rumahmengaji_backend/internals/features/materials/videos/model"
)

type CreateVideoRequest struct {
	StudyCenterID uint    `json:"study_center_id" validate:"required"`
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	FileURL       string  `json:"file_url" validate:"required,url"`
	Duration      *int    `json:"duration" validate:"omitempty,min=0"`
	UploadedBy    uint    `json:"uploaded_by"`
}

func (r *CreateVideoRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.FileURL = strings.TrimSpace(r.FileURL)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

func (r *CreateVideoRequest) ToModel() *model.VideoModel {
	return &model.VideoModel{
		VideoStudyCenterID: r.StudyCenterID,
		VideoTitle:         r.Title,
		VideoDescription:   r.Description,
		VideoFileURL:       r.FileURL,
		VideoDuration:      r.Duration,
		VideoUploadedBy:    r.UploadedBy,
		VideoIsActive:      true,
	}
}

type ListVideosQuery struct {
	StudyCenterID *uint
	IsActive      *bool
	Limit         int
	Offset        int
}

type VideoResponse struct {
	ID            uint      `json:"id"`
	StudyCenterID uint      `json:"study_center_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	FileURL       string    `json:"file_url"`
	Duration      *int      `json:"duration"`
	UploadedBy    uint      `json:"uploaded_by"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromModel(m *model.VideoModel) VideoResponse {
	return VideoResponse{
		ID:            m.VideoID,
		StudyCenterID: m.VideoStudyCenterID,
		Title:         m.VideoTitle,
		Description:   m.VideoDescription,
		FileURL:       m.VideoFileURL,
		Duration:      m.VideoDuration,
		UploadedBy:    m.VideoUploadedBy,
		IsActive:      m.VideoIsActive,
		CreatedAt:     m.VideoCreatedAt,
		UpdatedAt:     m.VideoUpdatedAt,
	}
}

func FromModels(list []model.VideoModel) []VideoResponse {
	out := make([]VideoResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
