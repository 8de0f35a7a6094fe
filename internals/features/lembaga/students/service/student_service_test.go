package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/lembaga/students/dto"
	centerModel "rumahmengaji_backend/internals/features/lembaga/study_centers/model"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/dbtime"
	"rumahmengaji_backend/internals/helpers/testdb"
)

func TestCreateStudent(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	pupil := testdb.User(t, db, constants.RoleStudent)
	pupil2 := testdb.User(t, db, constants.RoleStudent)
	teacherUser := testdb.User(t, db, constants.RoleCenterTeacher)
	svc := NewStudentService(db)

	parent := "Aminah binti Yusof"
	req := dto.CreateStudentRequest{
		UserID:        pupil.ID,
		StudyCenterID: center.StudyCenterID,
		ICNumber:      "130303-01-1234",
		DateOfBirth:   dbtime.MustParseDate("2013-03-03"),
		Address:       "Kampung Melayu Majidee",
		ParentName:    &parent,
	}
	m, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "2013-03-03", m.StudentDateOfBirth.String())

	wrongRole := req
	wrongRole.UserID = teacherUser.ID
	wrongRole.ICNumber = "130303-01-9999"
	_, err = svc.Create(ctx, wrongRole)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	dupIC := req
	dupIC.UserID = pupil2.ID
	_, err = svc.Create(ctx, dupIC)
	assert.Equal(t, apperror.KindUniquenessViolation, apperror.KindOf(err))

	dupProfile := req
	dupProfile.ICNumber = "130303-01-5555"
	_, err = svc.Create(ctx, dupProfile)
	assert.Equal(t, apperror.KindDuplicateRecord, apperror.KindOf(err))

	testdb.Deactivate(t, db, &centerModel.StudyCenterModel{StudyCenterID: center.StudyCenterID}, "study_center_is_active")
	closed := req
	closed.UserID = pupil2.ID
	closed.ICNumber = "130303-01-7777"
	_, err = svc.Create(ctx, closed)
	assert.Equal(t, apperror.KindInactive, apperror.KindOf(err))
}

func TestDeactivateStudent(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	st := testdb.Student(t, db, center.StudyCenterID)
	svc := NewStudentService(db)

	out, err := svc.Deactivate(ctx, st.StudentID)
	require.NoError(t, err)
	assert.False(t, out.StudentIsActive)

	out, err = svc.Deactivate(ctx, st.StudentID)
	require.NoError(t, err)
	assert.False(t, out.StudentIsActive)

	_, err = svc.Deactivate(ctx, 9999)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
