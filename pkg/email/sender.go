package email

import (
	"context"

	"github.com/aliskhannn/newsletter/internal/domain"
)

// Sender delivers a rendered confirmation email to a single recipient.
type Sender interface {
	SendConfirmation(ctx context.Context, to domain.SubscriberEmail, subject, htmlBody, textBody string) error
}

var (
	_ Sender = (*Client)(nil)
	_ Sender = (*SMTPClient)(nil)
)
