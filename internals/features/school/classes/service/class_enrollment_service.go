package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	studentModel "rumahmengaji_backend/internals/features/lembaga/students/model"
	studentService "rumahmengaji_backend/internals/features/lembaga/students/service"
	"rumahmengaji_backend/internals/features/school/classes/model"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/apperror"
)

const errAlreadyEnrolled = "student is already enrolled in this class"

type ClassEnrollmentService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewClassEnrollmentService(db *gorm.DB) *ClassEnrollmentService {
	return &ClassEnrollmentService{DB: db, now: time.Now}
}

// Enroll: kelas dikunci FOR UPDATE, jadi hitungan kapasitas dan insert
// tidak bisa diselip request lain untuk kelas yang sama. Pelajar harus
// terdaftar di pusat yang sama dengan kelas.
func (s *ClassEnrollmentService) Enroll(ctx context.Context, classID, studentID uint) (*model.ClassEnrollmentModel, error) {
	if studentID == 0 {
		return nil, apperror.Validation("student_id is required")
	}

	var out *model.ClassEnrollmentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		class, err := FindActive(tx.Clauses(clause.Locking{Strength: "UPDATE"}), classID)
		if err != nil {
			return err
		}
		st, err := studentService.FindActive(tx, studentID)
		if err != nil {
			return err
		}
		if st.StudentStudyCenterID != class.ClassStudyCenterID {
			return apperror.Newf(apperror.KindOwnershipMismatch,
				"student %d does not belong to study center %d", st.StudentID, class.ClassStudyCenterID)
		}

		var dup int64
		if err := tx.Model(&model.ClassEnrollmentModel{}).
			Where("class_enrollment_class_id = ? AND class_enrollment_student_id = ? AND class_enrollment_is_active = ?",
				classID, studentID, true).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return apperror.New(apperror.KindDuplicateRecord, errAlreadyEnrolled)
		}

		var enrolled int64
		if err := tx.Model(&model.ClassEnrollmentModel{}).
			Where("class_enrollment_class_id = ? AND class_enrollment_is_active = ?", classID, true).
			Count(&enrolled).Error; err != nil {
			return err
		}
		if enrolled >= int64(class.ClassCapacity) {
			return apperror.Newf(apperror.KindCapacityExceeded,
				"class %q is full (%d/%d)", class.ClassName, enrolled, class.ClassCapacity)
		}

		snap, err := studentSnapshot(tx, st)
		if err != nil {
			return err
		}
		m := &model.ClassEnrollmentModel{
			ClassEnrollmentClassID:         classID,
			ClassEnrollmentStudentID:       studentID,
			ClassEnrollmentEnrolledAt:      s.now(),
			ClassEnrollmentStudentSnapshot: snap,
			ClassEnrollmentIsActive:        true,
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindDuplicateRecord, errAlreadyEnrolled)
	}
	return out, nil
}

// studentSnapshot: nama & IC pelajar saat mendaftar.
func studentSnapshot(tx *gorm.DB, st *studentModel.StudentModel) (datatypes.JSONMap, error) {
	u, err := userService.Find(tx, st.StudentUserID)
	if err != nil {
		return nil, err
	}
	return datatypes.JSONMap{
		"student_id": st.StudentID,
		"full_name":  u.FullName,
		"ic_number":  st.StudentICNumber,
	}, nil
}

// ListByClass: kelas harus ada; active nil = semua.
func (s *ClassEnrollmentService) ListByClass(ctx context.Context, classID uint, active *bool, limit, offset int) ([]model.ClassEnrollmentModel, int64, error) {
	limit, offset = helper.ClampLimitOffset(limit, offset)
	db := s.DB.WithContext(ctx)
	if _, err := Find(db, classID); err != nil {
		return nil, 0, err
	}

	q := db.Model(&model.ClassEnrollmentModel{}).Where("class_enrollment_class_id = ?", classID)
	if active != nil {
		q = q.Where("class_enrollment_is_active = ?", *active)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "count enrollments")
	}
	var rows []model.ClassEnrollmentModel
	if err := q.Order("class_enrollment_enrolled_at DESC, class_enrollment_id DESC").
		Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, apperror.Wrap(apperror.KindInternal, err, "list enrollments")
	}
	return rows, total, nil
}

// Deactivate idempotent; kursi langsung kembali ke kapasitas kelas.
func (s *ClassEnrollmentService) Deactivate(ctx context.Context, id uint) (*model.ClassEnrollmentModel, error) {
	var out model.ClassEnrollmentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&out, "class_enrollment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("class enrollment", id)
			}
			return err
		}
		if !out.ClassEnrollmentIsActive {
			return nil
		}
		out.ClassEnrollmentIsActive = false
		return tx.Model(&out).Update("class_enrollment_is_active", false).Error
	})
	if err != nil {
		return nil, apperror.FromStorage(err, apperror.KindDuplicateRecord, errAlreadyEnrolled)
	}
	return &out, nil
}
