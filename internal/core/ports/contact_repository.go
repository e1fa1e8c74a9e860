package ports

import (
	"context"
	"time"

	"github.com/brightline/tutoring-platform/internal/core/domain"
)

// ListSubmissionsFilter carries query parameters for listing contact
// submissions.
type ListSubmissionsFilter struct {
	DeliveryState domain.DeliveryState // optional: filter by delivery state
	Page          int                  // 1-based
	Limit         int                  // max rows per page (capped at 100 by service)
}

// DeliveryUpdate is the one mutation a submission receives after creation:
// the outcome of its single delivery attempt.
type DeliveryUpdate struct {
	State       domain.DeliveryState
	Error       string     // set iff State is failed
	DeliveredAt *time.Time // set iff State is sent
}

// ContactRepository defines persistence operations for contact submissions.
type ContactRepository interface {
	Create(ctx context.Context, cs *domain.ContactSubmission) (*domain.ContactSubmission, error)
	FindByID(ctx context.Context, id string) (*domain.ContactSubmission, error)
	List(ctx context.Context, filter ListSubmissionsFilter) ([]*domain.ContactSubmission, int64, error)
	// UpdateDelivery writes only the delivery fields, leaving the
	// submission's content and submitted_at untouched.
	UpdateDelivery(ctx context.Context, id string, upd DeliveryUpdate) error
}
