package mailer

import "errors"

var (
	// ErrSendFailed indicates the transport rejected or failed the delivery.
	ErrSendFailed = errors.New("mailer: failed to send message")
	// ErrInvalidConfig indicates required transport configuration is missing.
	ErrInvalidConfig = errors.New("mailer: invalid configuration")
	// ErrInvalidMessage indicates the message cannot be delivered as composed.
	ErrInvalidMessage = errors.New("mailer: invalid message")
	// ErrUnknownDriver indicates an unrecognized MAILER_DRIVER value.
	ErrUnknownDriver = errors.New("mailer: unknown driver")
)
