package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightline/tutoring-platform/internal/api/metrics"
	"github.com/brightline/tutoring-platform/internal/core/domain"
	"github.com/brightline/tutoring-platform/internal/core/ports"
)

const defaultSendTimeout = 15 * time.Second

// ChannelConfig holds the four values required before any delivery attempt
// is made. It is captured once at construction; the dispatcher never reads
// process-wide state at call time.
type ChannelConfig struct {
	AccountSID    string
	AuthToken     string
	SenderAddress string
	Recipient     string

	// SendTimeout bounds the outbound call so a hung channel cannot block
	// the pipeline. Zero means defaultSendTimeout.
	SendTimeout time.Duration
}

// Complete reports whether all four required values are present.
func (c ChannelConfig) Complete() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.SenderAddress != "" && c.Recipient != ""
}

// WhatsAppNotifier performs at most one delivery attempt per submission and
// durably records the outcome before returning.
type WhatsAppNotifier struct {
	cfg    ChannelConfig
	sender ports.MessageSender
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewWhatsAppNotifier(cfg ChannelConfig, sender ports.MessageSender, repo ports.ContactRepository, logger zerolog.Logger) *WhatsAppNotifier {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	return &WhatsAppNotifier{
		cfg:    cfg,
		sender: sender,
		repo:   repo,
		logger: logger.With().Str("component", "whatsapp_notifier").Logger(),
	}
}

// Dispatch relays cs to the configured recipient. Outcomes:
//
//	Skipped — configuration incomplete, or delivery already final; the
//	          submission is untouched and stays not_attempted.
//	Sent    — the channel acknowledged; state became sent.
//	Failed  — the channel errored; state became failed with the message.
//
// The returned error is non-nil only when persisting the outcome failed.
func (n *WhatsAppNotifier) Dispatch(ctx context.Context, cs *domain.ContactSubmission) (ports.DispatchOutcome, error) {
	if cs.DeliveryState.Terminal() {
		return skipped("delivery already final"), nil
	}

	if !n.cfg.Complete() {
		n.logger.Debug().Str("submission_id", cs.ID).Msg("channel not configured, skipping delivery")
		metrics.DeliveriesTotal.WithLabelValues(string(ports.DispatchSkipped)).Inc()
		return skipped("not configured"), nil
	}

	sendCtx, cancel := context.WithTimeout(ctx, n.cfg.SendTimeout)
	defer cancel()

	sendErr := n.sender.Send(sendCtx, n.cfg.SenderAddress, n.cfg.Recipient, messageBody(cs))
	if sendErr != nil {
		if err := cs.MarkFailed(sendErr.Error()); err != nil {
			return skipped("delivery already final"), nil
		}
		metrics.DeliveriesTotal.WithLabelValues(string(ports.DispatchFailed)).Inc()

		upd := ports.DeliveryUpdate{State: domain.DeliveryFailed, Error: sendErr.Error()}
		if err := n.repo.UpdateDelivery(ctx, cs.ID, upd); err != nil {
			return ports.DispatchOutcome{Status: ports.DispatchFailed, Err: sendErr}, fmt.Errorf("record failed delivery: %w", err)
		}
		return ports.DispatchOutcome{Status: ports.DispatchFailed, Err: sendErr}, nil
	}

	at := time.Now().UTC()
	if err := cs.MarkSent(at); err != nil {
		return skipped("delivery already final"), nil
	}
	metrics.DeliveriesTotal.WithLabelValues(string(ports.DispatchSent)).Inc()

	upd := ports.DeliveryUpdate{State: domain.DeliverySent, DeliveredAt: &at}
	if err := n.repo.UpdateDelivery(ctx, cs.ID, upd); err != nil {
		return ports.DispatchOutcome{Status: ports.DispatchSent, SentAt: at}, fmt.Errorf("record sent delivery: %w", err)
	}
	return ports.DispatchOutcome{Status: ports.DispatchSent, SentAt: at}, nil
}

func skipped(reason string) ports.DispatchOutcome {
	return ports.DispatchOutcome{Status: ports.DispatchSkipped, Reason: reason}
}

// messageBody renders the fixed relay template.
func messageBody(cs *domain.ContactSubmission) string {
	return fmt.Sprintf(
		"New Contact Form Submission\n\nName: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s",
		cs.Name, cs.Email, cs.Phone, cs.Message,
	)
}
