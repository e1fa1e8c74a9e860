package domain

import "time"

// DeliveryState is the lifecycle state of a submission's outbound relay.
type DeliveryState string

const (
	DeliveryNotAttempted DeliveryState = "not_attempted"
	DeliverySent         DeliveryState = "sent"
	DeliveryFailed       DeliveryState = "failed"
)

// Terminal reports whether the state admits no further transition. A
// submission is relayed at most once: not_attempted moves to sent or
// failed and stops there.
func (s DeliveryState) Terminal() bool {
	return s == DeliverySent || s == DeliveryFailed
}

// ContactSubmission records one inbound contact request and the outcome of
// its single delivery attempt.
type ContactSubmission struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Message       string        `json:"message"`
	SubmittedAt   time.Time     `json:"submitted_at"`
	DeliveryState DeliveryState `json:"delivery_state"`
	DeliveryError string        `json:"delivery_error,omitempty"`
	DeliveredAt   *time.Time    `json:"delivered_at,omitempty"`
}

// MarkSent records a successful delivery. DeliveryError and DeliveredAt are
// mutually exclusive; the error field is cleared.
func (cs *ContactSubmission) MarkSent(at time.Time) error {
	if cs.DeliveryState.Terminal() {
		return ErrDeliveryFinal
	}
	cs.DeliveryState = DeliverySent
	cs.DeliveredAt = &at
	cs.DeliveryError = ""
	return nil
}

// MarkFailed records a failed delivery attempt with a human-readable cause.
func (cs *ContactSubmission) MarkFailed(msg string) error {
	if cs.DeliveryState.Terminal() {
		return ErrDeliveryFinal
	}
	cs.DeliveryState = DeliveryFailed
	cs.DeliveryError = msg
	cs.DeliveredAt = nil
	return nil
}

// FieldErrors maps a field name to its validation message. Validation
// checks every field independently so one response reports all violations.
type FieldErrors map[string]string
