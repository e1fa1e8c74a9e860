// Package whatsapp adapts the Twilio REST API to the ports.MessageSender
// interface used by the notification dispatcher.
package whatsapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client sends WhatsApp messages through Twilio.
type Client struct {
	api *twilio.RestClient
}

// NewClient builds a Twilio-backed sender from account credentials.
func NewClient(accountSID, authToken string) *Client {
	return &Client{
		api: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
	}
}

// Send performs one message create call. Twilio's generated client does not
// accept a context, so the call runs in a goroutine and the deadline is
// enforced at this boundary; on timeout the in-flight call is abandoned and
// the context error is returned.
func (c *Client) Send(ctx context.Context, from, to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(whatsappAddress(from))
	params.SetTo(whatsappAddress(to))
	params.SetBody(body)

	done := make(chan error, 1)
	go func() {
		_, err := c.api.Api.CreateMessage(params)
		done <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("twilio create message: %w", err)
		}
		return nil
	}
}

// whatsappAddress ensures the channel prefix Twilio requires on both
// endpoints of a WhatsApp message.
func whatsappAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
