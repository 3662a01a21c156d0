package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

type resendSender struct {
	cfg      Config
	client   *http.Client
	endpoint string
}

// ResendOption overrides transport details, primarily for tests.
type ResendOption func(*resendSender)

// WithResendEndpoint points the sender at an alternate API endpoint.
func WithResendEndpoint(url string) ResendOption {
	return func(s *resendSender) { s.endpoint = url }
}

// WithResendHTTPClient supplies a custom HTTP client.
func WithResendHTTPClient(c *http.Client) ResendOption {
	return func(s *resendSender) {
		if c != nil {
			s.client = c
		}
	}
}

// NewResendSender creates a Resend-backed sender. The API key and sender
// address are required up front so a broken deployment fails at startup
// rather than on the first submission.
func NewResendSender(cfg Config, opts ...ResendOption) (Sender, error) {
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("%w: RESEND_API_KEY is required", ErrInvalidConfig)
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("%w: MAILER_FROM is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.FromEmail) {
		return nil, fmt.Errorf("%w: MAILER_FROM must be a valid email address", ErrInvalidConfig)
	}

	s := &resendSender{
		cfg:      cfg,
		client:   &http.Client{Timeout: 15 * time.Second},
		endpoint: resendEndpoint,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// resendPayload mirrors the provider's wire format.
type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"replyTo,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send implements Sender over the Resend REST API. Configuration is
// re-checked before any network I/O so a sender constructed around an
// empty key still fails without touching the wire.
func (s *resendSender) Send(ctx context.Context, msg Message) error {
	if s.cfg.ResendAPIKey == "" {
		return fmt.Errorf("%w: RESEND_API_KEY is required", ErrInvalidConfig)
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(resendPayload{
		From:    s.cfg.FromEmail,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.ResendAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errors.Join(
			ErrSendFailed,
			fmt.Errorf("resend: %d - %s", resp.StatusCode, bytes.TrimSpace(detail)),
		)
	}
	return nil
}
