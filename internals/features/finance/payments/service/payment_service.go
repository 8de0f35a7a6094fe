package service

import (
	"context"
	"errors"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/finance/payments/dto"
	"rumahmengaji_backend/internals/features/finance/payments/model"
	studentService "rumahmengaji_backend/internals/features/lembaga/students/service"
	centerService "rumahmengaji_backend/internals/features/lembaga/study_centers/service"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

type PaymentService struct {
	DB    *gorm.DB
	today func() dbtime.Date
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db, today: dbtime.Today}
}

func (s *PaymentService) Create(ctx context.Context, req dto.CreatePaymentRequest) (*model.PaymentModel, error) {
	req.Normalize()
	if err := helper.ValidateAmount("amount", req.Amount); err != nil {
		return nil, err
	}
	if req.Description == "" {
		return nil, apperror.Validation("description is required")
	}
	if !req.DueDate.Valid() {
		return nil, apperror.Validation("due_date is required")
	}
	if req.RecordedBy == 0 {
		return nil, apperror.Validation("recorded_by is required")
	}

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st, err := studentService.Find(tx, req.StudentID)
		if err != nil {
			return err
		}
		if _, err := centerService.Find(tx, req.StudyCenterID); err != nil {
			return err
		}
		if st.StudentStudyCenterID != req.StudyCenterID {
			return apperror.Newf(apperror.KindOwnershipMismatch,
				"student %d does not belong to study center %d", st.StudentID, req.StudyCenterID)
		}
		if _, err := userService.Find(tx, req.RecordedBy); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindDuplicateRecord, "payment already exists")
	}
	return m, nil
}

// Update: paid tanpa paid_date → dicap hari ini.
func (s *PaymentService) Update(ctx context.Context, id uint, req dto.UpdatePaymentRequest) (*model.PaymentModel, error) {
	req.Normalize()
	if req.Status != nil && !slices.Contains(constants.PaymentStatuses, *req.Status) {
		return nil, apperror.Newf(apperror.KindValidation, "status %q is not supported", *req.Status)
	}

	var out model.PaymentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&out, "payment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("payment", id)
			}
			return err
		}

		patch := map[string]any{}
		if req.Status != nil {
			out.PaymentStatus = *req.Status
			patch["payment_status"] = out.PaymentStatus
		}
		if req.PaidDate != nil {
			out.PaymentPaidDate = *req.PaidDate
			patch["payment_paid_date"] = out.PaymentPaidDate
		}
		if out.PaymentStatus == constants.PaymentPaid && !out.PaymentPaidDate.Valid() {
			out.PaymentPaidDate = s.today()
			patch["payment_paid_date"] = out.PaymentPaidDate
		}
		if len(patch) == 0 {
			return nil
		}
		return tx.Model(&out).Updates(patch).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindDuplicateRecord, "payment conflict")
	}
	return &out, nil
}

// ListByStudent: due date terbaru dulu.
func (s *PaymentService) ListByStudent(ctx context.Context, studentID uint, status string, limit, offset int) ([]model.PaymentModel, int64, error) {
	limit, offset = helper.ClampLimitOffset(limit, offset)
	if status != "" && !slices.Contains(constants.PaymentStatuses, status) {
		return nil, 0, apperror.Newf(apperror.KindValidation, "status %q is not supported", status)
	}
	db := s.DB.WithContext(ctx)
	if _, err := studentService.Find(db, studentID); err != nil {
		return nil, 0, err
	}

	q := db.Model(&model.PaymentModel{}).Where("payment_student_id = ?", studentID)
	if status != "" {
		q = q.Where("payment_status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "count payments")
	}
	var rows []model.PaymentModel
	if err := q.Order("payment_due_date DESC, payment_id DESC").
		Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "list payments")
	}
	return rows, total, nil
}
