package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightline/tutoring-platform/internal/core/domain"
	"github.com/brightline/tutoring-platform/internal/core/ports"
)

type stubSender struct {
	err   error
	calls int
	from  string
	to    string
	body  string
}

func (s *stubSender) Send(_ context.Context, from, to, body string) error {
	s.calls++
	s.from, s.to, s.body = from, to, body
	return s.err
}

func configured() ChannelConfig {
	return ChannelConfig{
		AccountSID:    "AC123",
		AuthToken:     "secret",
		SenderAddress: "whatsapp:+15550001111",
		Recipient:     "whatsapp:+15552223333",
	}
}

func persistedSubmission(t *testing.T, repo *stubContactRepo) *domain.ContactSubmission {
	t.Helper()
	cs, err := repo.Create(context.Background(), &domain.ContactSubmission{
		Name:          "John Doe",
		Email:         "john@example.com",
		Phone:         "+1234567890",
		Message:       "I would like tutoring info.",
		SubmittedAt:   time.Now().UTC(),
		DeliveryState: domain.DeliveryNotAttempted,
	})
	if err != nil {
		t.Fatalf("seed submission: %v", err)
	}
	return cs
}

func TestWhatsAppNotifier_SkipsWhenNotConfigured(t *testing.T) {
	repo := newStubContactRepo()
	sender := &stubSender{}
	cs := persistedSubmission(t, repo)

	// Each of the four keys missing on its own must skip.
	for i := 0; i < 4; i++ {
		cfg := configured()
		switch i {
		case 0:
			cfg.AccountSID = ""
		case 1:
			cfg.AuthToken = ""
		case 2:
			cfg.SenderAddress = ""
		case 3:
			cfg.Recipient = ""
		}

		n := NewWhatsAppNotifier(cfg, sender, repo, zerolog.Nop())
		outcome, err := n.Dispatch(context.Background(), cs)
		if err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if outcome.Status != ports.DispatchSkipped || outcome.Reason != "not configured" {
			t.Fatalf("outcome = %+v", outcome)
		}
	}

	if sender.calls != 0 {
		t.Fatalf("sender called %d times while unconfigured", sender.calls)
	}

	stored, _ := repo.FindByID(context.Background(), cs.ID)
	if stored.DeliveryState != domain.DeliveryNotAttempted {
		t.Fatalf("skipped dispatch changed state to %s", stored.DeliveryState)
	}
}

func TestWhatsAppNotifier_SendSuccess(t *testing.T) {
	repo := newStubContactRepo()
	sender := &stubSender{}
	cs := persistedSubmission(t, repo)

	n := NewWhatsAppNotifier(configured(), sender, repo, zerolog.Nop())
	outcome, err := n.Dispatch(context.Background(), cs)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if outcome.Status != ports.DispatchSent || outcome.SentAt.IsZero() {
		t.Fatalf("outcome = %+v", outcome)
	}

	if sender.calls != 1 {
		t.Fatalf("sender called %d times", sender.calls)
	}
	if sender.from != "whatsapp:+15550001111" || sender.to != "whatsapp:+15552223333" {
		t.Fatalf("addressed %s -> %s", sender.from, sender.to)
	}
	for _, part := range []string{"John Doe", "john@example.com", "+1234567890", "I would like tutoring info."} {
		if !strings.Contains(sender.body, part) {
			t.Fatalf("body missing %q: %q", part, sender.body)
		}
	}

	stored, _ := repo.FindByID(context.Background(), cs.ID)
	if stored.DeliveryState != domain.DeliverySent {
		t.Fatalf("state = %s", stored.DeliveryState)
	}
	if stored.DeliveredAt == nil || stored.DeliveryError != "" {
		t.Fatalf("stored fields: delivered_at=%v error=%q", stored.DeliveredAt, stored.DeliveryError)
	}
}

func TestWhatsAppNotifier_SendFailure(t *testing.T) {
	repo := newStubContactRepo()
	sender := &stubSender{err: errors.New("rate limited")}
	cs := persistedSubmission(t, repo)

	n := NewWhatsAppNotifier(configured(), sender, repo, zerolog.Nop())
	outcome, err := n.Dispatch(context.Background(), cs)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if outcome.Status != ports.DispatchFailed || outcome.Err == nil {
		t.Fatalf("outcome = %+v", outcome)
	}

	stored, _ := repo.FindByID(context.Background(), cs.ID)
	if stored.DeliveryState != domain.DeliveryFailed {
		t.Fatalf("state = %s", stored.DeliveryState)
	}
	if stored.DeliveryError == "" {
		t.Fatal("delivery_error empty after failure")
	}
	if stored.DeliveredAt != nil {
		t.Fatal("delivered_at set on failure")
	}

	// Terminal: re-reading yields the same state, and a second dispatch
	// makes no further attempt.
	again, _ := repo.FindByID(context.Background(), cs.ID)
	if again.DeliveryState != stored.DeliveryState || again.DeliveryError != stored.DeliveryError {
		t.Fatal("terminal state not stable across reads")
	}
	outcome, err = n.Dispatch(context.Background(), again)
	if err != nil || outcome.Status != ports.DispatchSkipped {
		t.Fatalf("second dispatch = %+v, %v", outcome, err)
	}
	if sender.calls != 1 {
		t.Fatalf("sender retried: %d calls", sender.calls)
	}
}

func TestWhatsAppNotifier_OutcomePersistenceErrorPropagates(t *testing.T) {
	repo := newStubContactRepo()
	cs := persistedSubmission(t, repo)
	repo.updateErr = errors.New("write failed")

	n := NewWhatsAppNotifier(configured(), &stubSender{}, repo, zerolog.Nop())
	outcome, err := n.Dispatch(context.Background(), cs)
	if err == nil {
		t.Fatal("persistence failure swallowed")
	}
	if outcome.Status != ports.DispatchSent {
		t.Fatalf("outcome = %+v", outcome)
	}
}
