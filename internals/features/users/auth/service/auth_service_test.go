package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/users/user/dto"
	userModel "rumahmengaji_backend/internals/features/users/user/model"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/testdb"
)

const testSecret = "test-secret"

func TestTokenIssueParse(t *testing.T) {
	tokens := NewTokenService(nil, testSecret, time.Hour)
	u := &userModel.UserModel{ID: 42, Role: constants.RoleCenterManager}

	raw, exp, err := tokens.Issue(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	id, role, _, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)
	assert.Equal(t, string(constants.RoleCenterManager), role)

	_, _, _, err = ParseAccessToken(raw, "other-secret")
	assert.Error(t, err)

	expired := NewTokenService(nil, testSecret, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Issue(u)
	require.NoError(t, err)
	_, _, _, err = tokens.Parse(old)
	assert.Error(t, err)
}

func TestLoginLogout(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	users := userService.NewUserService(db)
	u, err := users.Create(ctx, dto.CreateUserRequest{
		Email:    "Ustazah.Aisyah@Example.my",
		Password: "bismillah123",
		FullName: "Ustazah Aisyah",
		Role:     string(constants.RoleCenterTeacher),
	})
	require.NoError(t, err)
	assert.Equal(t, "ustazah.aisyah@example.my", u.Email)

	tokens := NewTokenService(db, testSecret, time.Hour)
	svc := NewAuthService(db, tokens)

	res, err := svc.Login(ctx, "USTAZAH.AISYAH@example.my", "bismillah123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.User.ID)

	_, err = svc.Login(ctx, u.Email, "wrong-password")
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

	_, err = svc.Login(ctx, "nobody@example.my", "bismillah123")
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

	revoked, err := tokens.IsRevoked(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, svc.Logout(ctx, res.AccessToken))
	revoked, err = tokens.IsRevoked(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.True(t, revoked)

	// logout dua kali tetap ok
	require.NoError(t, svc.Logout(ctx, res.AccessToken))

	active := false
	_, err = users.Update(ctx, u.ID, dto.UpdateUserRequest{IsActive: &active})
	require.NoError(t, err)
	_, err = svc.Login(ctx, u.Email, "bismillah123")
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestPurgeExpired(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	tokens := NewTokenService(db, testSecret, time.Hour)

	require.NoError(t, tokens.Revoke(ctx, "old-token", time.Now().Add(-48*time.Hour)))
	require.NoError(t, tokens.Revoke(ctx, "fresh-token", time.Now().Add(time.Hour)))

	n, err := tokens.PurgeExpired(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	revoked, err := tokens.IsRevoked(ctx, "fresh-token")
	require.NoError(t, err)
	assert.True(t, revoked)
}
