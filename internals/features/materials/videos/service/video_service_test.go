package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/materials/videos/dto"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/testdb"
)

func TestCheckFileURL(t *testing.T) {
	assert.NoError(t, checkFileURL("https://cdn.rumahmengaji.my/iqra/1.mp4"))
	assert.NoError(t, checkFileURL("http://localhost:9000/v.mp4"))
	for _, bad := range []string{"", "iqra.mp4", "ftp://files/iqra.mp4", "https://"} {
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(checkFileURL(bad)), bad)
	}
}

func TestVideoLifecycle(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	uploader := testdb.User(t, db, constants.RoleCenterTeacher)
	svc := NewVideoService(db)

	minutes := 600
	v, err := svc.Create(ctx, dto.CreateVideoRequest{
		StudyCenterID: center.StudyCenterID,
		Title:         "Makhraj Huruf",
		FileURL:       "https://cdn.rumahmengaji.my/tajwid/makhraj.mp4",
		Duration:      &minutes,
		UploadedBy:    uploader.ID,
	})
	require.NoError(t, err)
	assert.True(t, v.VideoIsActive)

	negative := -1
	_, err = svc.Create(ctx, dto.CreateVideoRequest{
		StudyCenterID: center.StudyCenterID,
		Title:         "Salah",
		FileURL:       "https://cdn.rumahmengaji.my/x.mp4",
		Duration:      &negative,
		UploadedBy:    uploader.ID,
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.Deactivate(ctx, v.VideoID)
	require.NoError(t, err)
	_, err = svc.Deactivate(ctx, v.VideoID)
	require.NoError(t, err)

	active := true
	_, total, err := svc.List(ctx, dto.ListVideosQuery{StudyCenterID: &center.StudyCenterID, IsActive: &active})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	_, total, err = svc.List(ctx, dto.ListVideosQuery{StudyCenterID: &center.StudyCenterID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
