package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/brightline/tutoring-platform/internal/api/metrics"
	"github.com/brightline/tutoring-platform/internal/core/domain"
	"github.com/brightline/tutoring-platform/internal/core/ports"
)

// ContactService is the submission pipeline: validate, persist, relay,
// record. A relay failure never fails the pipeline; once the submission is
// stored the caller is told it was accepted.
type ContactService struct {
	repo     ports.ContactRepository
	notifier ports.Notifier
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, notifier ports.Notifier, logger zerolog.Logger) *ContactService {
	return &ContactService{
		repo:     repo,
		notifier: notifier,
		validate: validator.New(),
		logger:   logger.With().Str("component", "contact_service").Logger(),
	}
}

func (s *ContactService) Submit(ctx context.Context, in ports.SubmitContactInput) (*ports.SubmitResult, error) {
	if fieldErrs := s.validateInput(in); len(fieldErrs) > 0 {
		metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
		return &ports.SubmitResult{FieldErrors: fieldErrs}, nil
	}

	cs := &domain.ContactSubmission{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Message:       in.Message,
		SubmittedAt:   time.Now().UTC(),
		DeliveryState: domain.DeliveryNotAttempted,
	}

	created, err := s.repo.Create(ctx, cs)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to persist contact submission")
		return nil, err
	}

	metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()

	outcome, err := s.notifier.Dispatch(ctx, created)
	if err != nil {
		// The submission exists; a stale delivery record is an
		// operational concern, not grounds to retract acceptance.
		s.logger.Error().Err(err).Str("submission_id", created.ID).Msg("failed to record delivery outcome")
	}

	switch outcome.Status {
	case ports.DispatchSent:
		s.logger.Info().Str("submission_id", created.ID).Msg("contact submission relayed")
	case ports.DispatchSkipped:
		s.logger.Warn().Str("submission_id", created.ID).Str("reason", outcome.Reason).Msg("contact relay skipped")
	case ports.DispatchFailed:
		s.logger.Error().Err(outcome.Err).Str("submission_id", created.ID).Msg("contact relay failed")
	}

	return &ports.SubmitResult{Submission: created}, nil
}

// validateInput checks all four fields independently so one response
// reports every violation.
func (s *ContactService) validateInput(in ports.SubmitContactInput) domain.FieldErrors {
	fieldErrs := domain.FieldErrors{}

	if err := s.validate.Struct(in); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				field := strings.ToLower(fe.Field())
				switch fe.Tag() {
				case "required":
					fieldErrs[field] = field + " is required"
				case "email":
					fieldErrs[field] = field + " must be a valid email address"
				default:
					fieldErrs[field] = field + " is invalid"
				}
			}
		} else {
			fieldErrs["input"] = "invalid input"
		}
	}

	// The address grammar additionally requires a dotted domain
	// (local@domain.tld); validator's email tag alone accepts bare hosts.
	if _, ok := fieldErrs["email"]; !ok && in.Email != "" {
		at := strings.LastIndex(in.Email, "@")
		if at < 1 || !strings.Contains(in.Email[at+1:], ".") {
			fieldErrs["email"] = "email must be a valid email address"
		}
	}

	return fieldErrs
}

// Get returns one submission with its delivery status. Administrator only.
func (s *ContactService) Get(ctx context.Context, actor *domain.User, id string) (*domain.ContactSubmission, error) {
	if !domain.Decide(actor, domain.ActionIndex, "") {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

// List returns a page of submissions. Administrator only.
func (s *ContactService) List(ctx context.Context, actor *domain.User, filter ports.ListSubmissionsFilter) ([]*domain.ContactSubmission, int64, error) {
	if !domain.Decide(actor, domain.ActionIndex, "") {
		return nil, 0, domain.ErrForbidden
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	return s.repo.List(ctx, filter)
}
