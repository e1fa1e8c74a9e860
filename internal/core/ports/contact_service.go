package ports

import (
	"context"

	"github.com/brightline/tutoring-platform/internal/core/domain"
)

// SubmitContactInput is the raw form input for a contact request.
type SubmitContactInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required"`
	Message string `validate:"required"`
}

// SubmitResult reports the pipeline's decision. Exactly one of Submission
// and FieldErrors is set: an accepted submission, or the per-field
// validation failures.
type SubmitResult struct {
	Submission  *domain.ContactSubmission
	FieldErrors domain.FieldErrors
}

// Accepted reports whether the input passed validation and was persisted.
func (r *SubmitResult) Accepted() bool {
	return r.Submission != nil
}

// ContactService is the submission pipeline plus operator read access to
// delivery status.
type ContactService interface {
	// Submit validates, persists, and relays one contact request. A
	// delivery failure is not a pipeline failure; the error return is
	// reserved for persistence of the submission itself.
	Submit(ctx context.Context, in SubmitContactInput) (*SubmitResult, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.ContactSubmission, error)
	List(ctx context.Context, actor *domain.User, filter ListSubmissionsFilter) ([]*domain.ContactSubmission, int64, error)
}
