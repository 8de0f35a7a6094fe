package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/constants"
	centerModel "rumahmengaji_backend/internals/features/lembaga/study_centers/model"
	teacherModel "rumahmengaji_backend/internals/features/lembaga/teachers/model"
	"rumahmengaji_backend/internals/features/school/classes/dto"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/dbtime"
	"rumahmengaji_backend/internals/helpers/testdb"
)

func classReq(centerID, teacherID uint, start, end string) dto.CreateClassRequest {
	return dto.CreateClassRequest{
		StudyCenterID: centerID,
		Name:          "Kelas " + start,
		ClassType:     constants.ClassTypePhysical,
		TeacherID:     teacherID,
		ScheduleDay:   "Monday",
		StartTime:     dbtime.MustParse(start),
		EndTime:       dbtime.MustParse(end),
	}
}

func TestCreateClass_ScheduleConflict(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	teacher := testdb.Teacher(t, db, center.StudyCenterID)
	svc := NewClassService(db)

	one := 1
	first := classReq(center.StudyCenterID, teacher.TeacherID, "09:00", "10:30")
	first.Capacity = &one
	c1, err := svc.Create(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "monday", c1.ClassScheduleDay)
	assert.Equal(t, 1, c1.ClassCapacity)

	_, err = svc.Create(ctx, classReq(center.StudyCenterID, teacher.TeacherID, "10:00", "11:30"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindScheduleConflict, apperror.KindOf(err))
	assert.Contains(t, err.Error(), c1.ClassName)

	c3, err := svc.Create(ctx, classReq(center.StudyCenterID, teacher.TeacherID, "14:00", "15:30"))
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultClassCapacity, c3.ClassCapacity)

	// bersambung tidak bentrok
	_, err = svc.Create(ctx, classReq(center.StudyCenterID, teacher.TeacherID, "10:30", "11:00"))
	require.NoError(t, err)

	// hari lain bebas
	tue := classReq(center.StudyCenterID, teacher.TeacherID, "09:00", "10:30")
	tue.ScheduleDay = "tuesday"
	_, err = svc.Create(ctx, tue)
	require.NoError(t, err)
}

func TestCreateClass_DeactivatedClassFreesSlot(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	teacher := testdb.Teacher(t, db, center.StudyCenterID)
	svc := NewClassService(db)

	c1, err := svc.Create(ctx, classReq(center.StudyCenterID, teacher.TeacherID, "09:00", "10:30"))
	require.NoError(t, err)

	out, err := svc.Deactivate(ctx, c1.ClassID)
	require.NoError(t, err)
	assert.False(t, out.ClassIsActive)

	// idempotent
	out, err = svc.Deactivate(ctx, c1.ClassID)
	require.NoError(t, err)
	assert.False(t, out.ClassIsActive)

	_, err = svc.Create(ctx, classReq(center.StudyCenterID, teacher.TeacherID, "09:30", "10:00"))
	require.NoError(t, err)

	_, err = svc.Deactivate(ctx, 9999)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestCreateClass_Validation(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	teacher := testdb.Teacher(t, db, center.StudyCenterID)
	svc := NewClassService(db)

	inverted := classReq(center.StudyCenterID, teacher.TeacherID, "11:00", "10:00")
	_, err := svc.Create(ctx, inverted)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	empty := classReq(center.StudyCenterID, teacher.TeacherID, "10:00", "10:00")
	_, err = svc.Create(ctx, empty)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	badDay := classReq(center.StudyCenterID, teacher.TeacherID, "09:00", "10:00")
	badDay.ScheduleDay = "someday"
	_, err = svc.Create(ctx, badDay)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	zero := 0
	noSeats := classReq(center.StudyCenterID, teacher.TeacherID, "09:00", "10:00")
	noSeats.Capacity = &zero
	_, err = svc.Create(ctx, noSeats)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestCreateClass_References(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	other := testdb.Center(t, db)
	teacher := testdb.Teacher(t, db, center.StudyCenterID)
	svc := NewClassService(db)

	_, err := svc.Create(ctx, classReq(other.StudyCenterID, teacher.TeacherID, "09:00", "10:00"))
	assert.Equal(t, apperror.KindOwnershipMismatch, apperror.KindOf(err))

	_, err = svc.Create(ctx, classReq(center.StudyCenterID, 4242, "09:00", "10:00"))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = svc.Create(ctx, classReq(999, teacher.TeacherID, "09:00", "10:00"))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	testdb.Deactivate(t, db, &teacherModel.TeacherModel{TeacherID: teacher.TeacherID}, "teacher_is_active")
	_, err = svc.Create(ctx, classReq(center.StudyCenterID, teacher.TeacherID, "09:00", "10:00"))
	assert.Equal(t, apperror.KindInactive, apperror.KindOf(err))

	testdb.Deactivate(t, db, &centerModel.StudyCenterModel{StudyCenterID: center.StudyCenterID}, "study_center_is_active")
	_, err = svc.Create(ctx, classReq(center.StudyCenterID, teacher.TeacherID, "09:00", "10:00"))
	assert.Equal(t, apperror.KindInactive, apperror.KindOf(err))
}

func TestListClasses(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	teacher := testdb.Teacher(t, db, center.StudyCenterID)
	svc := NewClassService(db)

	c1 := testdb.Class(t, db, center.StudyCenterID, teacher.TeacherID, "08:00", "09:00", 5)
	testdb.Class(t, db, center.StudyCenterID, teacher.TeacherID, "09:00", "10:00", 5)
	_, err := svc.Deactivate(ctx, c1.ClassID)
	require.NoError(t, err)

	active := true
	rows, total, err := svc.List(ctx, dto.ListClassesQuery{StudyCenterID: &center.StudyCenterID, IsActive: &active})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, rows, 1)

	rows, total, err = svc.List(ctx, dto.ListClassesQuery{TeacherID: &teacher.TeacherID, ScheduleDay: "monday"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)

	_, _, err = svc.List(ctx, dto.ListClassesQuery{ScheduleDay: "funday"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
