package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/constants"
	authHelper "rumahmengaji_backend/internals/features/users/auth/helper"
	"rumahmengaji_backend/internals/features/users/user/dto"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/testdb"
)

func TestCreateUser(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	svc := NewUserService(db)

	req := dto.CreateUserRequest{
		Email:    "pengurus@example.my",
		Password: "rahsia-sekali",
		FullName: "Encik Hafiz",
		Role:     string(constants.RoleCenterManager),
	}
	u, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, req.Password, u.Password)
	assert.NoError(t, authHelper.CheckPasswordHash(u.Password, req.Password))

	dup := req
	dup.Email = " PENGURUS@example.my "
	_, err = svc.Create(ctx, dup)
	assert.Equal(t, apperror.KindUniquenessViolation, apperror.KindOf(err))

	badRole := req
	badRole.Email = "lain@example.my"
	badRole.Role = "superuser"
	_, err = svc.Create(ctx, badRole)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	short := req
	short.Email = "pendek@example.my"
	short.Password = "123"
	_, err = svc.Create(ctx, short)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestUpdateAndResetPassword(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	svc := NewUserService(db)
	a := testdb.User(t, db, constants.RoleStudent)
	b := testdb.User(t, db, constants.RoleStudent)

	taken := b.Email
	_, err := svc.Update(ctx, a.ID, dto.UpdateUserRequest{Email: &taken})
	assert.Equal(t, apperror.KindUniquenessViolation, apperror.KindOf(err))

	name := "  Nur Iman  "
	out, err := svc.Update(ctx, a.ID, dto.UpdateUserRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Nur Iman", out.FullName)

	_, err = svc.Update(ctx, 9999, dto.UpdateUserRequest{FullName: &name})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	require.NoError(t, svc.ResetPassword(ctx, a.Email, "kata-laluan-baru"))
	reloaded, err := Find(db, a.ID)
	require.NoError(t, err)
	assert.NoError(t, authHelper.CheckPasswordHash(reloaded.Password, "kata-laluan-baru"))

	err = svc.ResetPassword(ctx, "tiada@example.my", "kata-laluan-baru")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
