package ports

import (
	"context"
	"time"

	"github.com/brightline/tutoring-platform/internal/core/domain"
)

// MessageSender performs one outbound send on the messaging channel.
// Implementations must return within the deadline carried by ctx.
type MessageSender interface {
	Send(ctx context.Context, from, to, body string) error
}

// DispatchStatus classifies the result of a delivery attempt.
type DispatchStatus string

const (
	// DispatchSent: the channel acknowledged the message.
	DispatchSent DispatchStatus = "sent"
	// DispatchSkipped: no attempt was made (channel not configured). The
	// submission stays not_attempted; this is distinct from a failure.
	DispatchSkipped DispatchStatus = "skipped"
	// DispatchFailed: the attempt was made and the channel returned an
	// error.
	DispatchFailed DispatchStatus = "failed"
)

// DispatchOutcome describes what happened to a single delivery attempt.
type DispatchOutcome struct {
	Status DispatchStatus
	SentAt time.Time // set iff Status is DispatchSent
	Reason string    // set iff Status is DispatchSkipped
	Err    error     // set iff Status is DispatchFailed
}

// Notifier relays a persisted submission to the external channel and
// records the outcome on the submission before returning. The error return
// is reserved for failures persisting that outcome; channel errors are
// reported through the outcome itself.
type Notifier interface {
	Dispatch(ctx context.Context, cs *domain.ContactSubmission) (DispatchOutcome, error)
}
