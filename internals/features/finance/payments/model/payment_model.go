package model

import (
	"time"

	"github.com/shopspring/decimal"

	"rumahmengaji_backend/internals/helpers/dbtime"
)

// PaymentModel: tagihan/pembayaran yuran pelajar.
// Status hanya berubah lewat update eksplisit (pending → paid/overdue).
type PaymentModel struct {
	PaymentID            uint            `gorm:"column:payment_id;primaryKey" json:"payment_id"`
	PaymentStudentID     uint            `gorm:"column:payment_student_id;not null;index" json:"payment_student_id"`
	PaymentStudyCenterID uint            `gorm:"column:payment_study_center_id;not null;index" json:"payment_study_center_id"`
	PaymentAmount        decimal.Decimal `gorm:"column:payment_amount;type:numeric(10,2);not null" json:"payment_amount"`
	PaymentDescription   string          `gorm:"column:payment_description;type:text;not null" json:"payment_description"`
	PaymentStatus        string          `gorm:"column:payment_status;size:10;not null;default:pending" json:"payment_status"`
	PaymentDueDate       dbtime.Date     `gorm:"column:payment_due_date;type:date;not null;index" json:"payment_due_date"`
	PaymentPaidDate      dbtime.Date     `gorm:"column:payment_paid_date;type:date" json:"payment_paid_date"`
	PaymentRecordedBy    uint            `gorm:"column:payment_recorded_by;not null" json:"payment_recorded_by"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string { return "payments" }
