package access_test

import (
	"testing"

	"gallery-app/internal/domain/access"
	"gallery-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

var (
	admin     = access.Principal{ID: 1, Role: "admin"}
	client    = access.Principal{ID: 2, Role: "client"}
	anonymous = access.Anonymous()
)

func TestCanManageCatalog(t *testing.T) {
	assert.NoError(t, access.CanManageCatalog(admin))
	assert.ErrorIs(t, access.CanManageCatalog(client), access.ErrForbidden)
	assert.ErrorIs(t, access.CanManageCatalog(anonymous), access.ErrForbidden)
}

func TestCanManageSales(t *testing.T) {
	assert.NoError(t, access.CanManageSales(admin))
	assert.ErrorIs(t, access.CanManageSales(client), access.ErrForbidden)
}

func TestCanCreateInquiry(t *testing.T) {
	assert.NoError(t, access.CanCreateInquiry(anonymous))
	assert.NoError(t, access.CanCreateInquiry(client))
	assert.NoError(t, access.CanCreateInquiry(admin))
}

func TestCanActOnUser(t *testing.T) {
	tests := []struct {
		name      string
		principal access.Principal
		subjectID uint
		allowed   bool
	}{
		{"admin on anyone", admin, 2, true},
		{"self", client, 2, true},
		{"client on other user", client, 3, false},
		{"anonymous", anonymous, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := access.CanActOnUser(tt.principal, tt.subjectID)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, access.ErrForbidden)
			}
		})
	}
}

func TestCanDeactivateUser(t *testing.T) {
	// self-deactivation is rejected regardless of role
	assert.ErrorIs(t, access.CanDeactivateUser(admin, admin.ID), access.ErrForbidden)
	assert.ErrorIs(t, access.CanDeactivateUser(client, client.ID), access.ErrForbidden)

	assert.NoError(t, access.CanDeactivateUser(admin, client.ID))
	assert.ErrorIs(t, access.CanDeactivateUser(client, 3), access.ErrForbidden)
}

func TestMustVerifyCurrentPassword(t *testing.T) {
	assert.True(t, access.MustVerifyCurrentPassword(client, client.ID))
	assert.True(t, access.MustVerifyCurrentPassword(admin, admin.ID), "admins changing their own password still verify it")
	assert.False(t, access.MustVerifyCurrentPassword(admin, client.ID))
}

func TestFilterUserPatch(t *testing.T) {
	name := "Ana"
	email := "x@example.com"
	role := "admin"

	in := users.UserPatch{Name: &name, Email: &email, Role: &role}

	filtered := access.FilterUserPatch(client, in)
	assert.NotNil(t, filtered.Name)
	assert.Nil(t, filtered.Email, "non-admin email change must be dropped")
	assert.Nil(t, filtered.Role, "non-admin role change must be dropped")

	kept := access.FilterUserPatch(admin, in)
	assert.NotNil(t, kept.Email)
	assert.NotNil(t, kept.Role)
}
