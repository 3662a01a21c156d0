// Package handler exposes the HTTP surface of the intake relay: the
// form-to-notification pipeline, the health check and the router wiring.
package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rapidsites/intake/internal/form"
	"github.com/rapidsites/intake/internal/mailer"
	"github.com/rapidsites/intake/internal/notify"
	"github.com/rapidsites/intake/pkg/logger"
)

const formMediaType = "application/x-www-form-urlencoded"

// maxBodyBytes bounds the form body; intake submissions are a few KB at most.
const maxBodyBytes = 1 << 20

// Config holds the intake pipeline settings.
type Config struct {
	OperatorEmail       string `env:"INTAKE_OPERATOR_EMAIL,required"`
	ThankYouPath        string `env:"INTAKE_THANK_YOU_PATH" envDefault:"/thank-you"`
	ConfirmationEnabled bool   `env:"INTAKE_CONFIRMATION_ENABLED" envDefault:"true"`
}

// Intake handles one form submission per request: validate, decode, filter
// spam, render, deliver, redirect. The handler holds no mutable state, so
// concurrent invocations are independent.
type Intake struct {
	cfg    Config
	sender mailer.Sender
	log    *slog.Logger
	now    func() time.Time
}

// IntakeOption overrides Intake internals, primarily for tests.
type IntakeOption func(*Intake)

// WithClock substitutes the time source used for payment references.
func WithClock(now func() time.Time) IntakeOption {
	return func(h *Intake) {
		if now != nil {
			h.now = now
		}
	}
}

// NewIntake creates the intake pipeline handler.
func NewIntake(cfg Config, sender mailer.Sender, log *slog.Logger, opts ...IntakeOption) *Intake {
	if cfg.ThankYouPath == "" {
		cfg.ThankYouPath = "/thank-you"
	}
	h := &Intake{
		cfg:    cfg,
		sender: sender,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Intake) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.log.InfoContext(ctx, "intake request received",
		slog.String("method", r.Method),
		slog.Any("headers", headerSnapshot(r.Header)),
	)

	h.respond(w, r, h.handle(r))
}

// handle runs the pipeline and returns the response to render. Validation
// and configuration failures short-circuit before any side effect.
func (h *Intake) handle(r *http.Request) Response {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		h.log.WarnContext(ctx, "rejecting non-POST method", slog.String("method", r.Method))
		return Error(ErrMethodNotAllowed)
	}
	if mediaType(r.Header.Get("Content-Type")) != formMediaType {
		h.log.WarnContext(ctx, "rejecting unsupported content type",
			slog.String("content_type", r.Header.Get("Content-Type")))
		return Error(ErrUnsupportedMediaType)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.log.ErrorContext(ctx, "failed to read request body", logger.Error(err))
		return Text(http.StatusInternalServerError, fmt.Sprintf("Error: %v", err))
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		h.log.ErrorContext(ctx, "failed to parse form body", logger.Error(err))
		return Text(http.StatusInternalServerError, fmt.Sprintf("Error: %v", err))
	}

	sub := form.Decode(values)
	if sub.IsSpam() {
		h.log.WarnContext(ctx, "honeypot triggered, dropping submission")
		return Error(ErrBotDetected)
	}

	if h.sender == nil {
		h.log.ErrorContext(ctx, "no mail sender configured")
		return Error(ErrServerConfiguration)
	}

	now := h.now()

	msg := notify.Operator(sub, now)
	msg.To = h.cfg.OperatorEmail
	msg.ReplyTo = sub.Email
	if err := h.sender.Send(ctx, msg); err != nil {
		if errors.Is(err, mailer.ErrInvalidConfig) {
			h.log.ErrorContext(ctx, "mailer misconfigured", logger.Error(err))
			return Error(ErrServerConfiguration)
		}
		h.log.ErrorContext(ctx, "operator notification failed",
			logger.Error(err), slog.String("business", sub.BusinessName))
		return Text(http.StatusInternalServerError, fmt.Sprintf("Email service error: %v", err))
	}
	h.log.InfoContext(ctx, "operator notification sent", slog.String("business", sub.BusinessName))

	// Best-effort side channel: the confirmation outcome never affects the
	// response the submitter sees.
	if confErr := h.sendConfirmation(r, sub, now); confErr != nil {
		h.log.ErrorContext(ctx, "confirmation delivery failed, continuing",
			logger.Error(confErr), slog.String("to", sub.Email))
	}

	return Redirect(h.cfg.ThankYouPath)
}

// sendConfirmation delivers the optional client confirmation. A nil return
// also covers the skipped cases (disabled, or no address left).
func (h *Intake) sendConfirmation(r *http.Request, sub form.Submission, now time.Time) error {
	if !h.cfg.ConfirmationEnabled || sub.Email == "" {
		return nil
	}
	return h.sender.Send(r.Context(), notify.Confirmation(sub, now))
}

func (h *Intake) respond(w http.ResponseWriter, r *http.Request, resp Response) {
	if err := resp.Render(w, r); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
	}
}

// mediaType strips parameters such as charset from a Content-Type value.
func mediaType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// headerSnapshot flattens headers for diagnostics, masking credentials a
// proxy may have attached.
func headerSnapshot(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		switch http.CanonicalHeaderKey(name) {
		case "Authorization", "Cookie", "Proxy-Authorization":
			out[name] = "[redacted]"
		default:
			out[name] = strings.Join(values, ", ")
		}
	}
	return out
}
