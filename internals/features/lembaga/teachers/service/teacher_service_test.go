package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/lembaga/teachers/dto"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/dbtime"
	"rumahmengaji_backend/internals/helpers/testdb"
)

func TestCreateTeacher(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	u1 := testdb.User(t, db, constants.RoleCenterTeacher)
	u2 := testdb.User(t, db, constants.RoleCenterTeacher)
	svc := NewTeacherService(db)

	permit := "JAIJ/PG/2024/0012"
	req := dto.CreateTeacherRequest{
		UserID:           u1.ID,
		StudyCenterID:    center.StudyCenterID,
		ICNumber:         " 850505-01-5566 ",
		DateOfBirth:      dbtime.MustParseDate("1985-05-05"),
		Address:          "Taman Daya, Johor Bahru",
		JaijPermitNumber: &permit,
		JaijPermitExpiry: dbtime.MustParseDate("2026-12-31"),
	}
	m, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "850505-01-5566", m.TeacherICNumber)
	assert.True(t, m.TeacherIsActive)

	// user yang sama
	again := req
	again.ICNumber = "850505-01-0000"
	_, err = svc.Create(ctx, again)
	assert.Equal(t, apperror.KindDuplicateRecord, apperror.KindOf(err))

	// IC yang sama, user lain
	sameIC := req
	sameIC.UserID = u2.ID
	_, err = svc.Create(ctx, sameIC)
	assert.Equal(t, apperror.KindUniquenessViolation, apperror.KindOf(err))

	noDOB := req
	noDOB.UserID = u2.ID
	noDOB.DateOfBirth = dbtime.Date{}
	_, err = svc.Create(ctx, noDOB)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	ghost := req
	ghost.UserID = 9999
	_, err = svc.Create(ctx, ghost)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestListAndDeactivateTeachers(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	t1 := testdb.Teacher(t, db, center.StudyCenterID)
	testdb.Teacher(t, db, center.StudyCenterID)
	testdb.Teacher(t, db, testdb.Center(t, db).StudyCenterID)
	svc := NewTeacherService(db)

	out, err := svc.Deactivate(ctx, t1.TeacherID)
	require.NoError(t, err)
	assert.False(t, out.TeacherIsActive)
	_, err = svc.Deactivate(ctx, t1.TeacherID)
	require.NoError(t, err)

	_, err = FindActive(db, t1.TeacherID)
	assert.Equal(t, apperror.KindInactive, apperror.KindOf(err))

	rows, total, err := svc.List(ctx, dto.ListTeachersQuery{StudyCenterID: &center.StudyCenterID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)

	active := true
	_, total, err = svc.List(ctx, dto.ListTeachersQuery{StudyCenterID: &center.StudyCenterID, IsActive: &active})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
