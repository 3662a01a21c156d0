package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// sendMailFunc matches smtp.SendMail, swappable in tests.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpSender struct {
	cfg      Config
	sendMail sendMailFunc
}

// SMTPOption overrides transport details, primarily for tests.
type SMTPOption func(*smtpSender)

// WithSendMail substitutes the low-level send function.
func WithSendMail(fn sendMailFunc) SMTPOption {
	return func(s *smtpSender) {
		if fn != nil {
			s.sendMail = fn
		}
	}
}

// NewSMTPSender creates a sender that relays messages through an SMTP
// server using PLAIN authentication.
func NewSMTPSender(cfg Config, opts ...SMTPOption) (Sender, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("%w: SMTP_HOST, SMTP_USER and SMTP_PASS are required", ErrInvalidConfig)
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("%w: MAILER_FROM is required", ErrInvalidConfig)
	}

	s := &smtpSender{cfg: cfg, sendMail: smtp.SendMail}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Send implements Sender over an SMTP session. The plain-text body is
// preferred; messages composed without one fall back to the HTML body with
// the matching content type.
func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	if s.cfg.SMTPHost == "" || s.cfg.SMTPUser == "" || s.cfg.SMTPPass == "" {
		return fmt.Errorf("%w: SMTP_HOST, SMTP_USER and SMTP_PASS are required", ErrInvalidConfig)
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	body := msg.Text
	contentType := "text/plain; charset=UTF-8"
	if body == "" {
		body = msg.HTML
		contentType = "text/html; charset=UTF-8"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.FromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)

	if err := s.sendMail(addr, auth, s.cfg.FromEmail, []string{msg.To}, []byte(b.String())); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
