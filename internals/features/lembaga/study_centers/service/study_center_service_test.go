package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/lembaga/study_centers/dto"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/testdb"
)

func TestStudyCenterLifecycle(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	admin := testdb.User(t, db, constants.RoleCenterAdmin)
	svc := NewStudyCenterService(db)

	c, err := svc.Create(ctx, dto.CreateStudyCenterRequest{
		Name:    " Rumah Mengaji Skudai ",
		Address: "Jalan Pendidikan, Skudai",
		AdminID: admin.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rumah Mengaji Skudai", c.StudyCenterName)
	assert.True(t, c.StudyCenterIsActive)

	_, err = svc.Create(ctx, dto.CreateStudyCenterRequest{Name: "X", Address: "Y", AdminID: 9999})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = svc.Create(ctx, dto.CreateStudyCenterRequest{Name: "  ", Address: "Y", AdminID: admin.ID})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	testdb.Center(t, db)
	rows, total, err := svc.ListActive(ctx, 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)

	out, err := svc.Deactivate(ctx, c.StudyCenterID)
	require.NoError(t, err)
	assert.False(t, out.StudyCenterIsActive)
	_, err = svc.Deactivate(ctx, c.StudyCenterID)
	require.NoError(t, err)

	_, total, err = svc.ListActive(ctx, 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, err = FindActive(db, c.StudyCenterID)
	assert.Equal(t, apperror.KindInactive, apperror.KindOf(err))
}
