package ports

import (
	"context"

	"github.com/brightline/tutoring-platform/internal/core/domain"
)

// CreateUserInput carries the fields for an administrator-created account.
type CreateUserInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        string
}

// UpdateUserInput carries the mutable profile fields. Nil pointers leave
// the corresponding field untouched.
type UpdateUserInput struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Active      *bool
}

// UserPage is one page of a user listing.
type UserPage struct {
	Users []*domain.User
	Total int64
	Page  int
	Limit int
}

// UserService exposes management operations over user records. Every method
// takes the acting user: the service authorizes before touching the
// repository and returns domain.ErrForbidden on denial.
type UserService interface {
	List(ctx context.Context, actor *domain.User, filter ListUsersFilter) (*UserPage, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error)
	Create(ctx context.Context, actor *domain.User, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor *domain.User, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
