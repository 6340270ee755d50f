package domain

// Role is one of the fixed set of roles an account can hold.
type Role string

const (
	RoleSuperAdmin  Role = "super-admin"
	RoleBranchAdmin Role = "branch-admin"
	RoleChairperson Role = "chairperson"
	RoleCounsellor  Role = "counsellor"
	RoleMember      Role = "member"
	RoleEditor      Role = "editor"
)

// Permission names a capability that can be granted to a role or an account.
type Permission string

const (
	PermEvents     Permission = "events"
	PermMembers    Permission = "members"
	PermContent    Permission = "content"
	PermSettings   Permission = "settings"
	PermProfile    Permission = "profile"
	PermAwards     Permission = "awards"
	PermResearch   Permission = "research"
	PermNewsletter Permission = "newsletter"
	PermCarousel   Permission = "carousel"
	PermBranches   Permission = "branches"
	PermAdmins     Permission = "admins"
	PermMigration  Permission = "migration"

	// PermAll is the wildcard grant: an account holding it passes every
	// permission check.
	PermAll Permission = "all"
)

// Actor is the authenticated account as carried by the access token.
// A nil Actor means the request is unauthenticated.
type Actor struct {
	ID          uint
	Email       string
	Name        string
	Role        Role
	Branch      string
	Permissions []Permission
}

// defaultPermissions maps each role to the capabilities it holds without any
// explicit grant. Roles absent from a permission's set (and permissions
// absent entirely, such as branches/admins/migration) are reachable only via
// the super-admin bypass or an explicit grant.
var defaultPermissions = map[Role][]Permission{
	RoleBranchAdmin: {PermEvents, PermMembers, PermContent, PermSettings, PermProfile, PermAwards, PermResearch, PermNewsletter, PermCarousel},
	RoleChairperson: {PermEvents, PermMembers, PermContent, PermSettings, PermProfile, PermAwards, PermResearch, PermNewsletter},
	RoleCounsellor:  {PermEvents, PermMembers, PermContent, PermProfile},
	RoleMember:      {PermEvents, PermProfile},
	RoleEditor:      {PermContent, PermProfile, PermNewsletter},
}

// roleLabels maps roles to their human-readable names.
var roleLabels = map[Role]string{
	RoleSuperAdmin:  "Super Admin",
	RoleBranchAdmin: "Branch Admin",
	RoleChairperson: "Chairperson",
	RoleCounsellor:  "Counsellor",
	RoleMember:      "Member",
	RoleEditor:      "Editor",
}

// HasRole reports whether the actor holds the given role. Super-admin
// satisfies every role check. An unauthenticated actor never does.
func HasRole(actor *Actor, role Role) bool {
	if actor == nil {
		return false
	}
	if actor.Role == RoleSuperAdmin {
		return true
	}
	return actor.Role == role
}

// HasPermission reports whether the actor may exercise the given capability.
//
// Resolution order: super-admin bypass, then the role's default permission
// set, then the actor's explicit grants (including the wildcard). Explicit
// grants only ever add capabilities; there is no deny override. Unknown
// roles and unknown permissions resolve to false.
func HasPermission(actor *Actor, perm Permission) bool {
	if actor == nil {
		return false
	}
	if actor.Role == RoleSuperAdmin {
		return true
	}
	for _, p := range defaultPermissions[actor.Role] {
		if p == perm {
			return true
		}
	}
	for _, p := range actor.Permissions {
		if p == perm || p == PermAll {
			return true
		}
	}
	return false
}

// RoleDisplayName returns the human-readable label for a role, falling back
// to the raw value for roles without a label.
func RoleDisplayName(role Role) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return string(role)
}

// ActorBranch returns the actor's branch affiliation, or "" when the actor
// is unauthenticated or has none.
func ActorBranch(actor *Actor) string {
	if actor == nil {
		return ""
	}
	return actor.Branch
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role Role) bool {
	switch role {
	case RoleSuperAdmin, RoleBranchAdmin, RoleChairperson, RoleCounsellor, RoleMember, RoleEditor:
		return true
	}
	return false
}

// ValidPermission reports whether perm names a known capability or the
// wildcard.
func ValidPermission(perm Permission) bool {
	switch perm {
	case PermEvents, PermMembers, PermContent, PermSettings, PermProfile,
		PermAwards, PermResearch, PermNewsletter, PermCarousel,
		PermBranches, PermAdmins, PermMigration, PermAll:
		return true
	}
	return false
}

// Roles lists every known role.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleBranchAdmin, RoleChairperson, RoleCounsellor, RoleMember, RoleEditor}
}

// Permissions lists every grantable capability (excluding the wildcard).
func Permissions() []Permission {
	return []Permission{
		PermEvents, PermMembers, PermContent, PermSettings, PermProfile,
		PermAwards, PermResearch, PermNewsletter, PermCarousel,
		PermBranches, PermAdmins, PermMigration,
	}
}
