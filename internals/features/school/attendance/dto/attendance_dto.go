package dto

import (
	"strings"
	"time"

	"rumahmengaji_backend/internals/features/school/attendance/model"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

type CreateAttendanceRequest struct {
	ClassID    uint        `json:"class_id" validate:"required"`
	StudentID  uint        `json:"student_id" validate:"required"`
	Date       dbtime.Date `json:"date"`
	Status     string      `json:"status" validate:"required,oneof=present absent late"`
	Notes      *string     `json:"notes"`
	RecordedBy uint        `json:"recorded_by"`
}

func (r *CreateAttendanceRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Notes != nil {
		n := strings.TrimSpace(*r.Notes)
		if n == "" {
			r.Notes = nil
		} else {
			r.Notes = &n
		}
	}
}

type ListAttendanceQuery struct {
	DateFrom dbtime.Date
	DateTo   dbtime.Date
	Limit    int
	Offset   int
}

type AttendanceResponse struct {
	ID         uint        `json:"id"`
	ClassID    uint        `json:"class_id"`
	StudentID  uint        `json:"student_id"`
	Date       dbtime.Date `json:"date"`
	Status     string      `json:"status"`
	Notes      *string     `json:"notes"`
	RecordedBy uint        `json:"recorded_by"`
	RecordedAt time.Time   `json:"recorded_at"`
}

func FromModel(m *model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:         m.AttendanceID,
		ClassID:    m.AttendanceClassID,
		StudentID:  m.AttendanceStudentID,
		Date:       m.AttendanceDate,
		Status:     m.AttendanceStatus,
		Notes:      m.AttendanceNotes,
		RecordedBy: m.AttendanceRecordedBy,
		RecordedAt: m.AttendanceRecordedAt,
	}
}

func FromModels(list []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
