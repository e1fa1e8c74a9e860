package domain

// Action identifies an operation on managed user records.
type Action string

const (
	ActionIndex   Action = "index"
	ActionShow    Action = "show"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDestroy Action = "destroy"
)

// Decide is the authorization policy over user records: pure, no side
// effects, deny by default.
//
//	index/create/update/destroy: administrator only
//	show: administrator, or the actor viewing their own record
//
// A nil or unusable actor is denied every action, as is any action outside
// the closed set.
func Decide(actor *User, action Action, resourceID string) bool {
	if actor == nil || !actor.Usable() {
		return false
	}

	switch action {
	case ActionIndex, ActionCreate, ActionUpdate, ActionDestroy:
		return actor.Role == RoleAdministrator
	case ActionShow:
		return actor.Role == RoleAdministrator || resourceID == actor.ID
	default:
		return false
	}
}

// CanAccessDashboard is the per-role dashboard gate: a degenerate,
// per-route instance of the deny-by-default policy. All dashboard routes
// delegate here so the gate and Decide share the usability rule and cannot
// drift apart.
func CanAccessDashboard(actor *User, owner Role) bool {
	if actor == nil || !actor.Usable() {
		return false
	}
	return owner.IsValid() && actor.Role == owner
}
