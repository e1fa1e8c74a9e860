package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/brightline/tutoring-platform/internal/core/domain"
	"github.com/brightline/tutoring-platform/internal/core/ports"
)

const maxPageLimit = 100

// UserService implements management of user records. Authorization is
// enforced here, through domain.Decide, never in the handlers: every
// operation resolves the same policy table the dashboard guard uses.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger.With().Str("component", "user_service").Logger()}
}

func (s *UserService) List(ctx context.Context, actor *domain.User, filter ports.ListUsersFilter) (*ports.UserPage, error) {
	if !domain.Decide(actor, domain.ActionIndex, "") {
		return nil, domain.ErrForbidden
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.UserPage{Users: users, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *UserService) Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	if !domain.Decide(actor, domain.ActionShow, id) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, actor *domain.User, in ports.CreateUserInput) (*domain.User, error) {
	if !domain.Decide(actor, domain.ActionCreate, "") {
		return nil, domain.ErrForbidden
	}

	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, actor *domain.User, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if !domain.Decide(actor, domain.ActionUpdate, id) {
		return nil, domain.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if !domain.Decide(actor, domain.ActionDestroy, id) {
		return domain.ErrForbidden
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("user soft-deleted")
	return nil
}
