package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCan(t *testing.T) {
	for _, c := range allCapabilities {
		assert.True(t, RoleAdministrator.Can(c), c)
	}

	assert.False(t, RoleCenterAdmin.Can(CapCentersManage))
	assert.True(t, RoleCenterAdmin.Can(CapTeachersManage))

	assert.True(t, RoleCenterManager.Can(CapPaymentsManage))
	assert.False(t, RoleCenterManager.Can(CapTeachersManage))

	assert.True(t, RoleCenterTeacher.Can(CapAttendanceRecord))
	assert.False(t, RoleCenterTeacher.Can(CapPaymentsView))

	assert.True(t, RoleStudent.Can(CapVideosView))
	assert.False(t, RoleStudent.Can(CapAttendanceRecord))

	assert.False(t, Role("guest").Can(CapVideosView))
}

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := ParseRole("superuser")
	assert.Error(t, err)
}

func TestNormalizeWeekday(t *testing.T) {
	assert.Equal(t, "monday", NormalizeWeekday(" Monday "))
	assert.Equal(t, "", NormalizeWeekday("isnin"))
}
