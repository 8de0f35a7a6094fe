package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/school/attendance/dto"
	classService "rumahmengaji_backend/internals/features/school/classes/service"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/dbtime"
	"rumahmengaji_backend/internals/helpers/testdb"
)

type attendanceFixture struct {
	svc        *AttendanceService
	classID    uint
	studentA   uint
	studentB   uint
	recorderID uint
}

func setupAttendance(t *testing.T) attendanceFixture {
	t.Helper()
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	teacher := testdb.Teacher(t, db, center.StudyCenterID)
	class := testdb.Class(t, db, center.StudyCenterID, teacher.TeacherID, "09:00", "10:30", 10)
	a := testdb.Student(t, db, center.StudyCenterID)
	b := testdb.Student(t, db, center.StudyCenterID)

	enroll := classService.NewClassEnrollmentService(db)
	_, err := enroll.Enroll(ctx, class.ClassID, a.StudentID)
	require.NoError(t, err)
	_, err = enroll.Enroll(ctx, class.ClassID, b.StudentID)
	require.NoError(t, err)

	return attendanceFixture{
		svc:        NewAttendanceService(db),
		classID:    class.ClassID,
		studentA:   a.StudentID,
		studentB:   b.StudentID,
		recorderID: teacher.TeacherUserID,
	}
}

func (f attendanceFixture) req(studentID uint, date string) dto.CreateAttendanceRequest {
	return dto.CreateAttendanceRequest{
		ClassID:    f.classID,
		StudentID:  studentID,
		Date:       dbtime.MustParseDate(date),
		Status:     constants.AttendancePresent,
		RecordedBy: f.recorderID,
	}
}

func TestCreateAttendance_Duplicate(t *testing.T) {
	f := setupAttendance(t)
	ctx := context.Background()

	m, err := f.svc.Create(ctx, f.req(f.studentA, "2024-01-15"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", m.AttendanceDate.String())
	assert.False(t, m.AttendanceRecordedAt.IsZero())

	_, err = f.svc.Create(ctx, f.req(f.studentA, "2024-01-15"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindDuplicateRecord, apperror.KindOf(err))

	_, err = f.svc.Create(ctx, f.req(f.studentB, "2024-01-15"))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, f.req(f.studentA, "2024-01-22"))
	require.NoError(t, err)
}

func TestCreateAttendance_NotEnrolled(t *testing.T) {
	f := setupAttendance(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.req(9999, "2024-01-15"))
	assert.Equal(t, apperror.KindNotEnrolled, apperror.KindOf(err))

	bad := f.req(f.studentA, "2024-01-15")
	bad.ClassID = 9999
	_, err = f.svc.Create(ctx, bad)
	assert.Equal(t, apperror.KindNotEnrolled, apperror.KindOf(err))
}

func TestCreateAttendance_Validation(t *testing.T) {
	f := setupAttendance(t)
	ctx := context.Background()

	bad := f.req(f.studentA, "2024-01-15")
	bad.Status = "sick"
	_, err := f.svc.Create(ctx, bad)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	noDate := f.req(f.studentA, "2024-01-15")
	noDate.Date = dbtime.Date{}
	_, err = f.svc.Create(ctx, noDate)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	ghost := f.req(f.studentA, "2024-01-15")
	ghost.RecordedBy = 4242
	_, err = f.svc.Create(ctx, ghost)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestListAttendanceByClass(t *testing.T) {
	f := setupAttendance(t)
	ctx := context.Background()

	for _, d := range []string{"2024-01-08", "2024-01-15", "2024-01-22"} {
		_, err := f.svc.Create(ctx, f.req(f.studentA, d))
		require.NoError(t, err)
	}

	rows, total, err := f.svc.ListByClass(ctx, f.classID, dto.ListAttendanceQuery{
		DateFrom: dbtime.MustParseDate("2024-01-10"),
		DateTo:   dbtime.MustParseDate("2024-01-31"),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01-22", rows[0].AttendanceDate.String())

	_, _, err = f.svc.ListByClass(ctx, f.classID, dto.ListAttendanceQuery{
		DateFrom: dbtime.MustParseDate("2024-02-01"),
		DateTo:   dbtime.MustParseDate("2024-01-01"),
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, _, err = f.svc.ListByClass(ctx, 9999, dto.ListAttendanceQuery{})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
