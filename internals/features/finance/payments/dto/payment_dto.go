package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/finance/payments/model"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

type CreatePaymentRequest struct {
	StudentID     uint            `json:"student_id" validate:"required"`
	StudyCenterID uint            `json:"study_center_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description" validate:"required"`
	DueDate       dbtime.Date     `json:"due_date"`
	RecordedBy    uint            `json:"recorded_by"`
}

func (r *CreatePaymentRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreatePaymentRequest) ToModel() *model.PaymentModel {
	return &model.PaymentModel{
		PaymentStudentID:     r.StudentID,
		PaymentStudyCenterID: r.StudyCenterID,
		PaymentAmount:        r.Amount,
		PaymentDescription:   r.Description,
		PaymentStatus:        constants.PaymentPending,
		PaymentDueDate:       r.DueDate,
		PaymentRecordedBy:    r.RecordedBy,
	}
}

// UpdatePaymentRequest: field nil = tidak diubah.
type UpdatePaymentRequest struct {
	Status   *string      `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	PaidDate *dbtime.Date `json:"paid_date"`
}

func (r *UpdatePaymentRequest) Normalize() {
	if r.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &s
	}
}

type PaymentResponse struct {
	ID            uint        `json:"id"`
	StudentID     uint        `json:"student_id"`
	StudyCenterID uint        `json:"study_center_id"`
	Amount        string      `json:"amount"`
	Description   string      `json:"description"`
	Status        string      `json:"status"`
	DueDate       dbtime.Date `json:"due_date"`
	PaidDate      dbtime.Date `json:"paid_date"`
	RecordedBy    uint        `json:"recorded_by"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func FromModel(m *model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		ID:            m.PaymentID,
		StudentID:     m.PaymentStudentID,
		StudyCenterID: m.PaymentStudyCenterID,
		Amount:        helper.Money(m.PaymentAmount),
		Description:   m.PaymentDescription,
		Status:        m.PaymentStatus,
		DueDate:       m.PaymentDueDate,
		PaidDate:      m.PaymentPaidDate,
		RecordedBy:    m.PaymentRecordedBy,
		CreatedAt:     m.PaymentCreatedAt,
		UpdatedAt:     m.PaymentUpdatedAt,
	}
}

func FromModels(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
