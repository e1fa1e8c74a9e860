package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/brightline/tutoring-platform/internal/core/domain"
	"github.com/brightline/tutoring-platform/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, email string, role domain.Role) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{
		FirstName: "Seed",
		LastName:  "User",
		Email:     email,
		Role:      role,
		Active:    true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestUserService_NonAdminDeniedManagement(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	student := seedUser(t, repo, "student@example.com", domain.RoleStudent)

	if _, err := svc.List(context.Background(), student, ports.ListUsersFilter{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("List err = %v", err)
	}
	if _, err := svc.Create(context.Background(), student, ports.CreateUserInput{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("Create err = %v", err)
	}
	if _, err := svc.Update(context.Background(), student, student.ID, ports.UpdateUserInput{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("Update err = %v", err)
	}
	if err := svc.Delete(context.Background(), student, student.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("Delete err = %v", err)
	}
}

func TestUserService_SelfShowAllowed(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	parent := seedUser(t, repo, "parent@example.com", domain.RoleParent)
	other := seedUser(t, repo, "other@example.com", domain.RoleParent)

	got, err := svc.Get(context.Background(), parent, parent.ID)
	if err != nil {
		t.Fatalf("self Get: %v", err)
	}
	if got.ID != parent.ID {
		t.Fatalf("got %s", got.ID)
	}

	if _, err := svc.Get(context.Background(), parent, other.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("cross Get err = %v", err)
	}
}

func TestUserService_AdminCRUD(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	admin := seedUser(t, repo, "admin@example.com", domain.RoleAdministrator)

	created, err := svc.Create(context.Background(), admin, ports.CreateUserInput{
		FirstName: "New",
		LastName:  "Tutor",
		Email:     "tutor@example.com",
		Password:  "long-enough",
		Role:      "tutor",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Role != domain.RoleTutor {
		t.Fatalf("role = %s", created.Role)
	}

	name := "Renamed"
	updated, err := svc.Update(context.Background(), admin, created.ID, ports.UpdateUserInput{FirstName: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.FirstName != "Renamed" {
		t.Fatalf("first name = %q", updated.FirstName)
	}

	page, err := svc.List(context.Background(), admin, ports.ListUsersFilter{Role: domain.RoleTutor})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("total = %d", page.Total)
	}

	if err := svc.Delete(context.Background(), admin, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Soft delete: the record survives with the marker set, and drops out
	// of default listings.
	stored, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("deleted record gone from storage: %v", err)
	}
	if stored.DeletedAt == nil || stored.Active {
		t.Fatalf("soft delete fields: deleted_at=%v active=%v", stored.DeletedAt, stored.Active)
	}
	if stored.Usable() {
		t.Fatal("deleted user still usable")
	}

	page, err = svc.List(context.Background(), admin, ports.ListUsersFilter{Role: domain.RoleTutor})
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	if page.Total != 0 {
		t.Fatalf("deleted user still listed, total = %d", page.Total)
	}
}

func TestUserService_ListCapsLimit(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(t, repo, "admin@example.com", domain.RoleAdministrator)

	page, err := svc.List(context.Background(), admin, ports.ListUsersFilter{Limit: 10_000})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Limit != maxPageLimit {
		t.Fatalf("limit = %d", page.Limit)
	}
}
