package domain

import (
	"testing"
	"time"
)

func usableUser(id string, role Role) *User {
	return &User{ID: id, Role: role, Active: true}
}

func TestDecide_AdministratorAllowsAllActions(t *testing.T) {
	admin := usableUser("u1", RoleAdministrator)

	actions := []Action{ActionIndex, ActionShow, ActionCreate, ActionUpdate, ActionDestroy}
	for _, action := range actions {
		if !Decide(admin, action, "someone-else") {
			t.Fatalf("administrator denied %s", action)
		}
	}
}

func TestDecide_NonAdminRolesOnlySelfShow(t *testing.T) {
	for _, role := range []Role{RoleParent, RoleStudent, RoleTutor} {
		actor := usableUser("u1", role)

		for _, action := range []Action{ActionIndex, ActionCreate, ActionUpdate, ActionDestroy} {
			if Decide(actor, action, "u1") {
				t.Fatalf("%s allowed %s", role, action)
			}
		}

		if !Decide(actor, ActionShow, "u1") {
			t.Fatalf("%s denied viewing own record", role)
		}
		if Decide(actor, ActionShow, "u2") {
			t.Fatalf("%s allowed viewing another record", role)
		}
	}
}

func TestDecide_NilActorDenied(t *testing.T) {
	if Decide(nil, ActionShow, "u1") {
		t.Fatal("nil actor allowed")
	}
}

func TestDecide_UnknownActionDenied(t *testing.T) {
	admin := usableUser("u1", RoleAdministrator)
	if Decide(admin, Action("export"), "u1") {
		t.Fatal("unknown action allowed")
	}
}

func TestDecide_UnusableActorDenied(t *testing.T) {
	inactive := &User{ID: "u1", Role: RoleAdministrator, Active: false}
	if Decide(inactive, ActionIndex, "") {
		t.Fatal("inactive actor allowed")
	}

	// Deleted trumps active: the marker wins whatever the flag says.
	deleted := usableUser("u1", RoleAdministrator)
	when := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	deleted.DeletedAt = &when
	if Decide(deleted, ActionIndex, "") {
		t.Fatal("soft-deleted actor allowed")
	}
}

func TestCanAccessDashboard(t *testing.T) {
	for _, role := range Roles {
		actor := usableUser("u1", role)

		if !CanAccessDashboard(actor, role) {
			t.Fatalf("%s denied own dashboard", role)
		}

		for _, other := range Roles {
			if other == role {
				continue
			}
			if CanAccessDashboard(actor, other) {
				t.Fatalf("%s allowed %s dashboard", role, other)
			}
		}
	}

	if CanAccessDashboard(nil, RoleTutor) {
		t.Fatal("nil actor allowed a dashboard")
	}

	inactive := &User{ID: "u1", Role: RoleTutor, Active: false}
	if CanAccessDashboard(inactive, RoleTutor) {
		t.Fatal("inactive actor allowed a dashboard")
	}
}
