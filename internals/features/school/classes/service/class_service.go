package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rumahmengaji_backend/internals/constants"
	centerService "rumahmengaji_backend/internals/features/lembaga/study_centers/service"
	teacherService "rumahmengaji_backend/internals/features/lembaga/teachers/service"
	"rumahmengaji_backend/internals/features/school/classes/dto"
	"rumahmengaji_backend/internals/features/school/classes/model"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/apperror"
)

type ClassService struct {
	DB *gorm.DB
}

func NewClassService(db *gorm.DB) *ClassService {
	return &ClassService{DB: db}
}

func Find(tx *gorm.DB, id uint) (*model.ClassModel, error) {
	var m model.ClassModel
	if err := tx.First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("class", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "load class")
	}
	return &m, nil
}

func FindActive(tx *gorm.DB, id uint) (*model.ClassModel, error) {
	m, err := Find(tx, id)
	if err != nil {
		return nil, err
	}
	if !m.ClassIsActive {
		return nil, apperror.Inactive("class", id)
	}
	return m, nil
}

// validateInput: cek yang tidak butuh DB.
func validateInput(req *dto.CreateClassRequest) error {
	if req.Name == "" {
		return apperror.Validation("name is required")
	}
	day := constants.NormalizeWeekday(req.ScheduleDay)
	if day == "" {
		return apperror.Newf(apperror.KindValidation, "schedule_day %q is not a weekday", req.ScheduleDay)
	}
	req.ScheduleDay = day

	switch req.ClassType {
	case constants.ClassTypePhysical, constants.ClassTypeOnline, constants.ClassTypeOnCall:
	default:
		return apperror.Newf(apperror.KindValidation, "class_type %q is not supported", req.ClassType)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return apperror.Validation("start_time and end_time are required")
	}
	if !req.StartTime.Before(req.EndTime) {
		return apperror.Newf(apperror.KindValidation,
			"end_time %s must be after start_time %s", req.EndTime, req.StartTime)
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		return apperror.Validation("capacity must be a positive integer")
	}
	return nil
}

// Create = validate-and-create-class.
//
// Baris teacher dikunci FOR UPDATE supaya dua request untuk pengajar
// yang sama antre sebelum membaca jadwal aktifnya. Di Postgres constraint
// EXCLUDE pada tabel classes jadi lapisan terakhir (23P01 → ScheduleConflict).
func (s *ClassService) Create(ctx context.Context, req dto.CreateClassRequest) (*model.ClassModel, error) {
	req.Normalize()
	if err := validateInput(&req); err != nil {
		return nil, err
	}

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := centerService.FindActive(tx, req.StudyCenterID); err != nil {
			return err
		}
		t, err := teacherService.FindActive(tx.Clauses(clause.Locking{Strength: "UPDATE"}), req.TeacherID)
		if err != nil {
			return err
		}
		if t.TeacherStudyCenterID != req.StudyCenterID {
			return apperror.Newf(apperror.KindOwnershipMismatch,
				"teacher %d does not belong to study center %d", t.TeacherID, req.StudyCenterID)
		}

		var existing []model.ClassModel
		if err := tx.
			Where("class_teacher_id = ? AND class_schedule_day = ? AND class_is_active = ?",
				req.TeacherID, req.ScheduleDay, true).
			Find(&existing).Error; err != nil {
			return err
		}
		if c := FirstConflict(existing, m.ClassStartTime, m.ClassEndTime); c != nil {
			return apperror.Newf(apperror.KindScheduleConflict,
				"teacher already teaches %q on %s %s-%s",
				c.ClassName, c.ClassScheduleDay, c.ClassStartTime, c.ClassEndTime)
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindScheduleConflict, "class schedule conflicts with another class")
	}
	return m, nil
}

func (s *ClassService) List(ctx context.Context, q dto.ListClassesQuery) ([]model.ClassModel, int64, error) {
	q.Limit, q.Offset = helper.ClampLimitOffset(q.Limit, q.Offset)
	db := s.DB.WithContext(ctx).Model(&model.ClassModel{})
	if q.StudyCenterID != nil {
		db = db.Where("class_study_center_id = ?", *q.StudyCenterID)
	}
	if q.TeacherID != nil {
		db = db.Where("class_teacher_id = ?", *q.TeacherID)
	}
	if q.ScheduleDay != "" {
		day := constants.NormalizeWeekday(q.ScheduleDay)
		if day == "" {
			return nil, 0, apperror.Newf(apperror.KindValidation, "schedule_day %q is not a weekday", q.ScheduleDay)
		}
		db = db.Where("class_schedule_day = ?", day)
	}
	if q.IsActive != nil {
		db = db.Where("class_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "count classes")
	}
	var rows []model.ClassModel
	if err := db.Order("class_created_at DESC, class_id DESC").
		Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "list classes")
	}
	return rows, total, nil
}

// Deactivate idempotent. Slot jadwalnya langsung bebas untuk kelas lain.
func (s *ClassService) Deactivate(ctx context.Context, id uint) (*model.ClassModel, error) {
	var out model.ClassModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&out, "class_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("class", id)
			}
			return err
		}
		if !out.ClassIsActive {
			return nil
		}
		out.ClassIsActive = false
		return tx.Model(&out).Update("class_is_active", false).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindScheduleConflict, "class conflict")
	}
	return &out, nil
}
