package email

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"time"

	"gopkg.in/mail.v2"

	"github.com/aliskhannn/newsletter/internal/domain"
)

// SMTPClient sends emails over SMTP.
type SMTPClient struct {
	dialer *mail.Dialer
	sender domain.SubscriberEmail
}

// NewSMTPClient creates a new SMTPClient. Dialing and every SMTP exchange
// are bounded by timeout.
func NewSMTPClient(host string, port int, username, password string, sender domain.SubscriberEmail, timeout time.Duration) *SMTPClient {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = timeout
	dialer.RetryFailure = false

	return &SMTPClient{dialer: dialer, sender: sender}
}

// SendConfirmation delivers one multipart (text + html) message.
func (c *SMTPClient) SendConfirmation(
	ctx context.Context,
	to domain.SubscriberEmail,
	subject, htmlBody, textBody string,
) error {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}

		return fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}

	message := mail.NewMessage()

	message.SetHeader("From", c.sender.String())
	message.SetHeader("To", to.String())
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", textBody)
	message.AddAlternative("text/html", htmlBody)

	if err := c.dialer.DialAndSend(message); err != nil {
		return classifySMTP(err)
	}

	return nil
}

// classifySMTP maps a DialAndSend error onto the package error kinds.
func classifySMTP(err error) error {
	cause := err

	// SendError does not implement Unwrap.
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) && sendErr.Cause != nil {
		cause = sendErr.Cause
	}

	var protoErr *textproto.Error
	switch {
	case errors.As(cause, &protoErr):
		return &RemoteRejectedError{StatusCode: protoErr.Code, Message: protoErr.Msg}
	case isTimeout(cause):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}
}
