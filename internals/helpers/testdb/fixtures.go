package testdb

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	studentModel "rumahmengaji_backend/internals/features/lembaga/students/model"
	centerModel "rumahmengaji_backend/internals/features/lembaga/study_centers/model"
	teacherModel "rumahmengaji_backend/internals/features/lembaga/teachers/model"
	classModel "rumahmengaji_backend/internals/features/school/classes/model"
	userModel "rumahmengaji_backend/internals/features/users/user/model"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

var seq atomic.Int64

func next() int64 { return seq.Add(1) }

// User membuat user aktif dengan role tertentu.
func User(t testing.TB, db *gorm.DB, role constants.Role) *userModel.UserModel {
	t.Helper()
	n := next()
	u := &userModel.UserModel{
		Email:    fmt.Sprintf("user%d@example.my", n),
		Password: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z1Ckc3uY5pGxMyGS1N4zDq3e",
		FullName: fmt.Sprintf("User %d", n),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func Center(t testing.TB, db *gorm.DB) *centerModel.StudyCenterModel {
	t.Helper()
	admin := User(t, db, constants.RoleCenterAdmin)
	c := &centerModel.StudyCenterModel{
		StudyCenterName:     fmt.Sprintf("Rumah Mengaji %d", next()),
		StudyCenterAddress:  "Jalan Masjid, Johor Bahru",
		StudyCenterAdminID:  admin.ID,
		StudyCenterIsActive: true,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func Teacher(t testing.TB, db *gorm.DB, centerID uint) *teacherModel.TeacherModel {
	t.Helper()
	u := User(t, db, constants.RoleCenterTeacher)
	m := &teacherModel.TeacherModel{
		TeacherUserID:        u.ID,
		TeacherStudyCenterID: centerID,
		TeacherICNumber:      fmt.Sprintf("800101-01-%04d", next()),
		TeacherDateOfBirth:   dbtime.MustParseDate("1980-01-01"),
		TeacherAddress:       "Taman Universiti",
		TeacherIsActive:      true,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func Student(t testing.TB, db *gorm.DB, centerID uint) *studentModel.StudentModel {
	t.Helper()
	u := User(t, db, constants.RoleStudent)
	m := &studentModel.StudentModel{
		StudentUserID:        u.ID,
		StudentStudyCenterID: centerID,
		StudentICNumber:      fmt.Sprintf("120101-01-%04d", next()),
		StudentDateOfBirth:   dbtime.MustParseDate("2012-01-01"),
		StudentAddress:       "Taman Pelangi",
		StudentIsActive:      true,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

// Class: kelas aktif Isnin dengan jam "HH:MM".
func Class(t testing.TB, db *gorm.DB, centerID, teacherID uint, start, end string, capacity int) *classModel.ClassModel {
	t.Helper()
	m := &classModel.ClassModel{
		ClassStudyCenterID: centerID,
		ClassName:          fmt.Sprintf("Iqra %d", next()),
		ClassType:          constants.ClassTypePhysical,
		ClassTeacherID:     teacherID,
		ClassScheduleDay:   "monday",
		ClassStartTime:     dbtime.MustParse(start),
		ClassEndTime:       dbtime.MustParse(end),
		ClassCapacity:      capacity,
		ClassIsActive:      true,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

// Deactivate mematikan flag aktif langsung di tabel (untuk skenario Inactive).
func Deactivate(t testing.TB, db *gorm.DB, model any, column string) {
	t.Helper()
	require.NoError(t, db.Model(model).Update(column, false).Error)
}
