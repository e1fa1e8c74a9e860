package domain

// Role classifies a user's access level. The set is closed: every decision
// site switches exhaustively over these four values.
type Role string

const (
	RoleParent        Role = "parent"
	RoleStudent       Role = "student"
	RoleTutor         Role = "tutor"
	RoleAdministrator Role = "administrator"
)

// Roles lists every valid role, in declaration order.
var Roles = []Role{RoleParent, RoleStudent, RoleTutor, RoleAdministrator}

// ParseRole converts a raw string into a Role. Unknown values return
// ErrInvalidRole so callers never carry an out-of-set role forward.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleParent, RoleStudent, RoleTutor, RoleAdministrator:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// IsValid reports whether r belongs to the closed role set.
func (r Role) IsValid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// DefaultLandingPath is where unrecognised roles and denied dashboard
// requests are sent.
const DefaultLandingPath = "/"

// SignInPath is where unauthenticated dashboard requests are sent.
const SignInPath = "/sign-in"

// DashboardPath maps a role to its post-login destination. The mapping is
// total: values outside the closed set fall back to the default landing
// path. That branch is unreachable for users built through ParseRole and
// exists only as a safety net.
func DashboardPath(r Role) string {
	switch r {
	case RoleAdministrator:
		return "/dashboards/admin"
	case RoleTutor:
		return "/dashboards/tutor"
	case RoleStudent:
		return "/dashboards/student"
	case RoleParent:
		return "/dashboards/parent"
	default:
		return DefaultLandingPath
	}
}

// RoleForDashboard resolves a dashboard slug (the :role path segment) back
// to its owning role. The second return is false for unknown slugs.
func RoleForDashboard(slug string) (Role, bool) {
	switch slug {
	case "admin":
		return RoleAdministrator, true
	case "tutor":
		return RoleTutor, true
	case "student":
		return RoleStudent, true
	case "parent":
		return RoleParent, true
	}
	return "", false
}
