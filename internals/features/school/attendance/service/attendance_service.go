package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/school/attendance/dto"
	"rumahmengaji_backend/internals/features/school/attendance/model"
	classModel "rumahmengaji_backend/internals/features/school/classes/model"
	classService "rumahmengaji_backend/internals/features/school/classes/service"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/apperror"
)

const (
	// Satu pesan untuk kelas tidak ada, pelajar tidak ada, atau belum terdaftar.
	errNotEnrolled     = "student is not enrolled in this class"
	errDuplicateRecord = "attendance already recorded for this student on this date"
)

type AttendanceService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db, now: time.Now}
}

// Create: enrollment aktif → duplikat → pencatat aktif → insert.
func (s *AttendanceService) Create(ctx context.Context, req dto.CreateAttendanceRequest) (*model.AttendanceModel, error) {
	req.Normalize()
	switch req.Status {
	case constants.AttendancePresent, constants.AttendanceAbsent, constants.AttendanceLate:
	default:
		return nil, apperror.Newf(apperror.KindValidation, "status %q is not supported", req.Status)
	}
	if !req.Date.Valid() {
		return nil, apperror.Validation("date is required")
	}
	if req.RecordedBy == 0 {
		return nil, apperror.Validation("recorded_by is required")
	}

	var out *model.AttendanceModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var enrolled int64
		if err := tx.Model(&classModel.ClassEnrollmentModel{}).
			Where("class_enrollment_class_id = ? AND class_enrollment_student_id = ? AND class_enrollment_is_active = ?",
				req.ClassID, req.StudentID, true).
			Count(&enrolled).Error; err != nil {
			return err
		}
		if enrolled == 0 {
			return apperror.New(apperror.KindNotEnrolled, errNotEnrolled)
		}

		var dup int64
		if err := tx.Model(&model.AttendanceModel{}).
			Where("attendance_class_id = ? AND attendance_student_id = ? AND attendance_date = ?",
				req.ClassID, req.StudentID, req.Date).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return apperror.New(apperror.KindDuplicateRecord, errDuplicateRecord)
		}

		if _, err := userService.FindActive(tx, req.RecordedBy); err != nil {
			return err
		}

		m := &model.AttendanceModel{
			AttendanceClassID:    req.ClassID,
			AttendanceStudentID:  req.StudentID,
			AttendanceDate:       req.Date,
			AttendanceStatus:     req.Status,
			AttendanceNotes:      req.Notes,
			AttendanceRecordedBy: req.RecordedBy,
			AttendanceRecordedAt: s.now(),
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindDuplicateRecord, errDuplicateRecord)
	}
	return out, nil
}

// ListByClass: rentang tanggal inklusif, zero Date = tanpa batas.
func (s *AttendanceService) ListByClass(ctx context.Context, classID uint, q dto.ListAttendanceQuery) ([]model.AttendanceModel, int64, error) {
	q.Limit, q.Offset = helper.ClampLimitOffset(q.Limit, q.Offset)
	if q.DateFrom.Valid() && q.DateTo.Valid() && q.DateTo.Before(q.DateFrom) {
		return nil, 0, apperror.Validation("date_to must not be before date_from")
	}
	db := s.DB.WithContext(ctx)
	if _, err := classService.Find(db, classID); err != nil {
		return nil, 0, err
	}

	tx := db.Model(&model.AttendanceModel{}).Where("attendance_class_id = ?", classID)
	if q.DateFrom.Valid() {
		tx = tx.Where("attendance_date >= ?", q.DateFrom)
	}
	if q.DateTo.Valid() {
		tx = tx.Where("attendance_date <= ?", q.DateTo)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "count attendance")
	}
	var rows []model.AttendanceModel
	if err := tx.Order("attendance_date DESC, attendance_id DESC").
		Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "list attendance")
	}
	return rows, total, nil
}
