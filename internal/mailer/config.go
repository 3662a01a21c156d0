package mailer

import "fmt"

// Known driver names.
const (
	DriverResend   = "resend"
	DriverPostmark = "postmark"
	DriverSMTP     = "smtp"
	DriverDev      = "dev"
)

// Config holds delivery configuration. Only the fields of the selected
// driver are required; New validates them and fails fast so a misconfigured
// process never reaches the point of accepting submissions.
type Config struct {
	Driver    string `env:"MAILER_DRIVER" envDefault:"resend"`
	FromEmail string `env:"MAILER_FROM,required"`

	// Resend driver.
	ResendAPIKey string `env:"RESEND_API_KEY"`

	// Postmark driver.
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	// SMTP driver.
	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	// Dev driver.
	DevDir string `env:"MAILER_DEV_DIR" envDefault:"./tmp/emails"`
}

// New creates the Sender named by cfg.Driver.
func New(cfg Config) (Sender, error) {
	switch cfg.Driver {
	case DriverResend:
		return NewResendSender(cfg)
	case DriverPostmark:
		return NewPostmarkSender(cfg)
	case DriverSMTP:
		return NewSMTPSender(cfg)
	case DriverDev:
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Must creates the configured Sender and panics on invalid config,
// failing fast during initialization.
func Must(cfg Config) Sender {
	s, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return s
}
