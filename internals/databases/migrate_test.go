package database_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/constants"
	studentModel "rumahmengaji_backend/internals/features/lembaga/students/model"
	teacherModel "rumahmengaji_backend/internals/features/lembaga/teachers/model"
	attendanceModel "rumahmengaji_backend/internals/features/school/attendance/model"
	classModel "rumahmengaji_backend/internals/features/school/classes/model"
	userModel "rumahmengaji_backend/internals/features/users/user/model"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/dbtime"
	"rumahmengaji_backend/internals/helpers/testdb"
)

// Insert langsung lewat gorm, tanpa service: yang menolak harus index di tabel.

func storageKind(err error, dupKind apperror.Kind) apperror.Kind {
	return apperror.KindOf(apperror.FromStorage(err, dupKind, "duplicate"))
}

func enrollment(classID, studentID uint, active bool) *classModel.ClassEnrollmentModel {
	return &classModel.ClassEnrollmentModel{
		ClassEnrollmentClassID:    classID,
		ClassEnrollmentStudentID:  studentID,
		ClassEnrollmentEnrolledAt: time.Now(),
		ClassEnrollmentIsActive:   active,
	}
}

func TestMigrate_ActiveEnrollmentUnique(t *testing.T) {
	db := testdb.New(t)
	center := testdb.Center(t, db)
	teacher := testdb.Teacher(t, db, center.StudyCenterID)
	class := testdb.Class(t, db, center.StudyCenterID, teacher.TeacherID, "09:00", "10:30", 5)
	st := testdb.Student(t, db, center.StudyCenterID)

	first := enrollment(class.ClassID, st.StudentID, true)
	require.NoError(t, db.Create(first).Error)

	err := db.Create(enrollment(class.ClassID, st.StudentID, true)).Error
	require.Error(t, err)
	assert.Equal(t, apperror.KindDuplicateRecord, storageKind(err, apperror.KindDuplicateRecord))

	// index parsial: baris nonaktif tidak ikut dihitung
	require.NoError(t, db.Model(first).Update("class_enrollment_is_active", false).Error)
	require.NoError(t, db.Create(enrollment(class.ClassID, st.StudentID, true)).Error)
	require.NoError(t, db.Create(enrollment(class.ClassID, st.StudentID, false)).Error)

	var active int64
	require.NoError(t, db.Model(&classModel.ClassEnrollmentModel{}).
		Where("class_enrollment_class_id = ? AND class_enrollment_is_active = ?", class.ClassID, true).
		Count(&active).Error)
	assert.EqualValues(t, 1, active)
}

func TestMigrate_AttendanceUniquePerDay(t *testing.T) {
	db := testdb.New(t)
	center := testdb.Center(t, db)
	teacher := testdb.Teacher(t, db, center.StudyCenterID)
	class := testdb.Class(t, db, center.StudyCenterID, teacher.TeacherID, "09:00", "10:30", 5)
	st := testdb.Student(t, db, center.StudyCenterID)
	recorder := testdb.User(t, db, constants.RoleCenterTeacher)

	row := func(date string) *attendanceModel.AttendanceModel {
		return &attendanceModel.AttendanceModel{
			AttendanceClassID:    class.ClassID,
			AttendanceStudentID:  st.StudentID,
			AttendanceDate:       dbtime.MustParseDate(date),
			AttendanceStatus:     "present",
			AttendanceRecordedBy: recorder.ID,
			AttendanceRecordedAt: time.Now(),
		}
	}

	require.NoError(t, db.Create(row("2024-01-15")).Error)

	err := db.Create(row("2024-01-15")).Error
	require.Error(t, err)
	assert.Equal(t, apperror.KindDuplicateRecord, storageKind(err, apperror.KindDuplicateRecord))

	require.NoError(t, db.Create(row("2024-01-16")).Error)
}

func TestMigrate_UserEmailUnique(t *testing.T) {
	db := testdb.New(t)
	u := testdb.User(t, db, constants.RoleStudent)

	err := db.Create(&userModel.UserModel{
		Email:    u.Email,
		Password: u.Password,
		FullName: "Salinan",
		Role:     constants.RoleStudent,
		IsActive: true,
	}).Error
	require.Error(t, err)
	assert.Equal(t, apperror.KindUniquenessViolation, storageKind(err, apperror.KindUniquenessViolation))
}

func TestMigrate_ICNumberUnique(t *testing.T) {
	db := testdb.New(t)
	center := testdb.Center(t, db)
	teacher := testdb.Teacher(t, db, center.StudyCenterID)
	st := testdb.Student(t, db, center.StudyCenterID)

	cases := []struct {
		name string
		row  func(u *userModel.UserModel) any
	}{
		{"teacher", func(u *userModel.UserModel) any {
			return &teacherModel.TeacherModel{
				TeacherUserID:        u.ID,
				TeacherStudyCenterID: center.StudyCenterID,
				TeacherICNumber:      teacher.TeacherICNumber,
				TeacherDateOfBirth:   dbtime.MustParseDate("1985-05-05"),
				TeacherAddress:       "Taman Molek",
				TeacherIsActive:      true,
			}
		}},
		{"student", func(u *userModel.UserModel) any {
			return &studentModel.StudentModel{
				StudentUserID:        u.ID,
				StudentStudyCenterID: center.StudyCenterID,
				StudentICNumber:      st.StudentICNumber,
				StudentDateOfBirth:   dbtime.MustParseDate("2013-03-03"),
				StudentAddress:       "Taman Molek",
				StudentIsActive:      true,
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// user baru, jadi hanya IC yang bentrok
			u := testdb.User(t, db, constants.RoleStudent)
			err := db.Create(tc.row(u)).Error
			require.Error(t, err)
			assert.Equal(t, apperror.KindUniquenessViolation, storageKind(err, apperror.KindUniquenessViolation))
		})
	}
}
