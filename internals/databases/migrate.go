package database

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	fundModel "rumahmengaji_backend/internals/features/finance/fund_transactions/model"
	paymentModel "rumahmengaji_backend/internals/features/finance/payments/model"
	studentModel "rumahmengaji_backend/internals/features/lembaga/students/model"
	centerModel "rumahmengaji_backend/internals/features/lembaga/study_centers/model"
	teacherModel "rumahmengaji_backend/internals/features/lembaga/teachers/model"
	distributionModel "rumahmengaji_backend/internals/features/materials/distributions/model"
	videoModel "rumahmengaji_backend/internals/features/materials/videos/model"
	attendanceModel "rumahmengaji_backend/internals/features/school/attendance/model"
	classModel "rumahmengaji_backend/internals/features/school/classes/model"
	authModel "rumahmengaji_backend/internals/features/users/auth/model"
	userModel "rumahmengaji_backend/internals/features/users/user/model"
)

// Urutan = urutan dependensi FK.
func models() []any {
	return []any{
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&centerModel.StudyCenterModel{},
		&teacherModel.TeacherModel{},
		&studentModel.StudentModel{},
		&classModel.ClassModel{},
		&classModel.ClassEnrollmentModel{},
		&attendanceModel.AttendanceModel{},
		&paymentModel.PaymentModel{},
		&videoModel.VideoModel{},
		&distributionModel.MaterialDistributionModel{},
		&fundModel.FundTransactionModel{},
	}
}

// Index yang berlaku di semua dialect (Postgres & SQLite untuk test).
var portableIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_class_enrollments_active
		ON class_enrollments (class_enrollment_class_id, class_enrollment_student_id)
		WHERE class_enrollment_is_active`,
}

// Migrate: AutoMigrate + constraint level storage.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		return errors.Wrap(err, "auto-migrate")
	}
	for _, stmt := range portableIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "create index")
		}
	}
	if db.Dialector.Name() == "postgres" {
		if err := migratePostgres(db); err != nil {
			return err
		}
	}
	zap.L().Info("schema migrated", zap.String("dialect", db.Dialector.Name()))
	return nil
}

// ===== Postgres only =====

type constraint struct {
	table, name, def string
}

var checks = []constraint{
	{"classes", "ck_classes_time_order", "CHECK (class_end_time > class_start_time)"},
	{"classes", "ck_classes_capacity", "CHECK (class_capacity > 0)"},
	{"classes", "ck_classes_schedule_day", "CHECK (class_schedule_day IN ('monday','tuesday','wednesday','thursday','friday','saturday','sunday'))"},
	{"classes", "ck_classes_type", "CHECK (class_type IN ('physical','online','on_call'))"},
	{"attendance", "ck_attendance_status", "CHECK (attendance_status IN ('present','absent','late'))"},
	{"payments", "ck_payments_amount", "CHECK (payment_amount > 0)"},
	{"payments", "ck_payments_status", "CHECK (payment_status IN ('pending','paid','overdue'))"},
	{"videos", "ck_videos_duration", "CHECK (video_duration IS NULL OR video_duration >= 0)"},
	{"material_distributions", "ck_material_distributions_quantity", "CHECK (material_distribution_quantity > 0)"},
	{"material_distributions", "ck_material_distributions_sale_price", `CHECK (
		(material_distribution_is_sale AND material_distribution_price IS NOT NULL AND material_distribution_price > 0)
		OR (NOT material_distribution_is_sale AND material_distribution_price IS NULL))`},
	{"fund_transactions", "ck_fund_transactions_amount", "CHECK (fund_transaction_amount > 0)"},
	{"fund_transactions", "ck_fund_transactions_type", "CHECK (fund_transaction_fund_type IN ('donation','study','waqf','infaq','sadaqa'))"},
}

// tidak ada dua kelas aktif milik pengajar yang sama di hari yang sama beririsan [start, end)
var exclusions = []constraint{
	{"classes", "ex_classes_teacher_schedule", `EXCLUDE USING gist (
		class_teacher_id WITH =,
		class_schedule_day WITH =,
		tsrange(DATE '2000-01-01' + class_start_time, DATE '2000-01-01' + class_end_time, '[)') WITH &&
	) WHERE (class_is_active)`},
}

type foreignKey struct {
	table, column, refTable, refColumn string
}

var foreignKeys = []foreignKey{
	{"study_centers", "study_center_admin_id", "users", "id"},
	{"teachers", "teacher_user_id", "users", "id"},
	{"teachers", "teacher_study_center_id", "study_centers", "study_center_id"},
	{"students", "student_user_id", "users", "id"},
	{"students", "student_study_center_id", "study_centers", "study_center_id"},
	{"classes", "class_study_center_id", "study_centers", "study_center_id"},
	{"classes", "class_teacher_id", "teachers", "teacher_id"},
	{"class_enrollments", "class_enrollment_class_id", "classes", "class_id"},
	{"class_enrollments", "class_enrollment_student_id", "students", "student_id"},
	{"attendance", "attendance_class_id", "classes", "class_id"},
	{"attendance", "attendance_student_id", "students", "student_id"},
	{"attendance", "attendance_recorded_by", "users", "id"},
	{"payments", "payment_student_id", "students", "student_id"},
	{"payments", "payment_study_center_id", "study_centers", "study_center_id"},
	{"payments", "payment_recorded_by", "users", "id"},
	{"videos", "video_study_center_id", "study_centers", "study_center_id"},
	{"videos", "video_uploaded_by", "users", "id"},
	{"material_distributions", "material_distribution_study_center_id", "study_centers", "study_center_id"},
	{"material_distributions", "material_distribution_recipient_id", "users", "id"},
	{"material_distributions", "material_distribution_recorded_by", "users", "id"},
	{"fund_transactions", "fund_transaction_study_center_id", "study_centers", "study_center_id"},
	{"fund_transactions", "fund_transaction_recorded_by", "users", "id"},
}

func (fk foreignKey) constraint() constraint {
	return constraint{
		table: fk.table,
		name:  fmt.Sprintf("fk_%s_%s", fk.table, fk.column),
		def:   fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)", fk.column, fk.refTable, fk.refColumn),
	}
}

// addConstraintSQL: idempotent, aman dijalankan tiap boot.
func addConstraintSQL(c constraint) string {
	return fmt.Sprintf(`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
		ALTER TABLE %s ADD CONSTRAINT %s %s;
	END IF;
END $$;`, c.name, c.table, c.name, c.def)
}

func migratePostgres(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return errors.Wrap(err, "enable btree_gist")
	}

	all := make([]constraint, 0, len(checks)+len(exclusions)+len(foreignKeys))
	all = append(all, checks...)
	all = append(all, exclusions...)
	for _, fk := range foreignKeys {
		all = append(all, fk.constraint())
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, c := range all {
			if err := tx.Exec(addConstraintSQL(c)).Error; err != nil {
				return errors.Wrapf(err, "add constraint %s", c.name)
			}
		}
		return nil
	})
}
