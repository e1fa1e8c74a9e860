package ports

import (
	"context"

	"github.com/brightline/tutoring-platform/internal/core/domain"
)

// ListUsersFilter carries query parameters for listing users.
type ListUsersFilter struct {
	Role           domain.Role // optional: filter by role
	IncludeDeleted bool        // when false, soft-deleted users are excluded
	Page           int         // 1-based
	Limit          int         // max rows per page (capped at 100 by service)
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns a page of users matching filter and the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, u *domain.User) error
	// SoftDelete stamps deleted_at and clears the active flag. The record
	// is retained.
	SoftDelete(ctx context.Context, id string) error
}
