// Package mailer delivers notification messages through an outbound email
// transport. Four interchangeable drivers exist: the Resend REST API (default),
// Postmark, a plain SMTP relay, and a file-dump sender for local development.
package mailer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender represents an interface for sending messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message represents one outbound email.
type Message struct {
	To      string // Email address of the recipient
	ReplyTo string // Optional reply-to address
	Subject string // Subject line
	HTML    string // HTML body
	Text    string // Plain-text body, used by the SMTP driver
	Tag     string // Optional tag for provider-side categorization
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the message is deliverable before any transport work.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidMessage)
	}
	if !emailRegex.MatchString(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if m.HTML == "" && m.Text == "" {
		return fmt.Errorf("%w: message body is required", ErrInvalidMessage)
	}
	return nil
}
