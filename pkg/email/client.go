// Package email sends transactional emails to subscribers.
//
// Client talks to an HTTP delivery API; SMTPClient speaks SMTP directly.
// Both make exactly one delivery attempt per call and report failures as
// ErrTimeout, ErrRemoteRejected or ErrTransportFailure.
package email

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aliskhannn/newsletter/internal/domain"
)

// SendPath is the delivery API endpoint, relative to the base URL.
const SendPath = "/email/send"

// Client sends emails through an HTTP delivery API.
//
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // shared transport, timeout fixed at construction
	baseURL    string       // delivery API base URL, without trailing slash
	sender     domain.SubscriberEmail
	apiKey     string
}

// NewClient creates a new Client. Every request is bounded by timeout.
func NewClient(baseURL string, sender domain.SubscriberEmail, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		sender:     sender,
		apiKey:     apiKey,
	}
}

// SendConfirmation posts one transactional email to the delivery API.
//
// Any 2xx answer is a success. No retry is attempted.
func (c *Client) SendConfirmation(
	ctx context.Context,
	to domain.SubscriberEmail,
	subject, htmlBody, textBody string,
) error {
	form := url.Values{}
	form.Set("Apikey", c.apiKey)
	form.Set("Subject", subject)
	form.Set("From", c.sender.String())
	form.Set("To", to.String())
	form.Set("BodyHtml", htmlBody)
	form.Set("BodyText", textBody)
	form.Set("IsTransactional", strconv.FormatBool(true))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SendPath, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrTransportFailure, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}

		return fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RemoteRejectedError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
