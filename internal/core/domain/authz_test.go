package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	tests := []struct {
		name  string
		actor *Actor
		role  Role
		want  bool
	}{
		{"nil actor denied", nil, RoleMember, false},
		{"super-admin satisfies any role", &Actor{Role: RoleSuperAdmin}, RoleBranchAdmin, true},
		{"super-admin satisfies own role", &Actor{Role: RoleSuperAdmin}, RoleSuperAdmin, true},
		{"exact role match", &Actor{Role: RoleEditor}, RoleEditor, true},
		{"role mismatch", &Actor{Role: RoleEditor}, RoleChairperson, false},
		{"unknown role denied", &Actor{Role: Role("intern")}, RoleMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasRole(tt.actor, tt.role))
		})
	}
}

func TestHasPermission_SuperAdminBypass(t *testing.T) {
	// Super-admin passes every permission check, explicit grants or not.
	admin := &Actor{Role: RoleSuperAdmin}
	for _, perm := range Permissions() {
		assert.True(t, HasPermission(admin, perm), "super-admin must hold %q", perm)
	}

	// Even permissions outside the catalog resolve to true for super-admin.
	assert.True(t, HasPermission(admin, Permission("made-up")))
}

func TestHasPermission_RoleDefaults(t *testing.T) {
	tests := []struct {
		name  string
		actor *Actor
		perm  Permission
		want  bool
	}{
		{"nil actor denied", nil, PermEvents, false},
		{"member has events by default", &Actor{Role: RoleMember}, PermEvents, true},
		{"member lacks branches", &Actor{Role: RoleMember}, PermBranches, false},
		{"member lacks members", &Actor{Role: RoleMember}, PermMembers, false},
		{"editor has content", &Actor{Role: RoleEditor}, PermContent, true},
		{"editor has newsletter", &Actor{Role: RoleEditor}, PermNewsletter, true},
		{"editor lacks settings", &Actor{Role: RoleEditor}, PermSettings, false},
		{"counsellor has members", &Actor{Role: RoleCounsellor}, PermMembers, true},
		{"counsellor lacks awards", &Actor{Role: RoleCounsellor}, PermAwards, false},
		{"branch-admin has carousel", &Actor{Role: RoleBranchAdmin}, PermCarousel, true},
		{"chairperson lacks carousel", &Actor{Role: RoleChairperson}, PermCarousel, false},
		{"chairperson has research", &Actor{Role: RoleChairperson}, PermResearch, true},
		{"no role holds admins by default", &Actor{Role: RoleBranchAdmin}, PermAdmins, false},
		{"no role holds migration by default", &Actor{Role: RoleChairperson}, PermMigration, false},
		{"unknown role denied", &Actor{Role: Role("intern")}, PermEvents, false},
		{"unknown permission denied", &Actor{Role: RoleBranchAdmin}, Permission("made-up"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.actor, tt.perm))
		})
	}
}

func TestHasPermission_ExplicitGrants(t *testing.T) {
	// Explicit grants add capabilities the role default lacks, and never
	// remove ones it has.
	editor := &Actor{Role: RoleEditor, Permissions: []Permission{PermBranches}}
	assert.True(t, HasPermission(editor, PermBranches))
	assert.True(t, HasPermission(editor, PermContent), "role default survives explicit grants")
	assert.False(t, HasPermission(editor, PermSettings), "no default, no grant")

	// The wildcard grant opens everything for a non-super-admin role.
	member := &Actor{Role: RoleMember, Permissions: []Permission{PermAll}}
	for _, perm := range Permissions() {
		assert.True(t, HasPermission(member, perm), "wildcard must grant %q", perm)
	}
}

func TestRoleDisplayName(t *testing.T) {
	assert.Equal(t, "Super Admin", RoleDisplayName(RoleSuperAdmin))
	assert.Equal(t, "Branch Admin", RoleDisplayName(RoleBranchAdmin))
	assert.Equal(t, "Counsellor", RoleDisplayName(RoleCounsellor))

	// Unknown roles fall back to the raw value instead of failing.
	assert.Equal(t, "intern", RoleDisplayName(Role("intern")))
}

func TestActorBranch(t *testing.T) {
	assert.Equal(t, "", ActorBranch(nil))
	assert.Equal(t, "", ActorBranch(&Actor{Role: RoleMember}))
	assert.Equal(t, "north", ActorBranch(&Actor{Role: RoleBranchAdmin, Branch: "north"}))
}

func TestValidRoleAndPermission(t *testing.T) {
	for _, role := range Roles() {
		assert.True(t, ValidRole(role))
	}
	assert.False(t, ValidRole(Role("intern")))

	for _, perm := range Permissions() {
		assert.True(t, ValidPermission(perm))
	}
	assert.True(t, ValidPermission(PermAll))
	assert.False(t, ValidPermission(Permission("made-up")))
}
