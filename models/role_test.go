package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePermissions(t *testing.T) {
	t.Run("viewer is read only", func(t *testing.T) {
		assert.True(t, VIEWER.HasPermission(CASE_READ))
		assert.False(t, VIEWER.HasPermission(CASE_CREATE))
		assert.False(t, VIEWER.HasPermission(CASE_APPROVE))
		assert.False(t, VIEWER.HasPermission(REFERENCE_DATA_WRITE))
	})

	t.Run("officer creates cases but does not approve them", func(t *testing.T) {
		assert.True(t, OFFICER.HasPermission(CASE_CREATE))
		assert.False(t, OFFICER.HasPermission(CASE_APPROVE))
		assert.False(t, OFFICER.HasPermission(REFERENCE_DATA_WRITE))
	})

	t.Run("regulations admin has every permission", func(t *testing.T) {
		for _, p := range []Permission{
			CASE_READ, CASE_CREATE, CASE_APPROVE,
			REFERENCE_DATA_READ, REFERENCE_DATA_WRITE,
		} {
			assert.True(t, REGULATIONS_ADMIN.HasPermission(p), p.String())
		}
	})

	t.Run("no role has no permissions", func(t *testing.T) {
		assert.Empty(t, NO_ROLE.Permissions())
	})
}

func TestRoleFromString(t *testing.T) {
	assert.Equal(t, OFFICER, RoleFromString("OFFICER"))
	assert.Equal(t, REGULATIONS_ADMIN, RoleFromString("REGULATIONS_ADMIN"))
	assert.Equal(t, NO_ROLE, RoleFromString("officer"))
	assert.Equal(t, NO_ROLE, RoleFromString(""))
}
