package ports

import (
	"context"

	"github.com/brightline/tutoring-platform/internal/core/domain"
)

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        string
}

// LoginResult is returned on successful authentication. RedirectTo is the
// dashboard destination for the user's role, resolved exactly once at
// sign-in time.
type LoginResult struct {
	Token      string
	User       *domain.User
	RedirectTo string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
