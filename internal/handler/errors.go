package handler

import "net/http"

// HTTPError represents a pipeline failure with its HTTP status code and the
// short diagnostic body returned to the caller.
type HTTPError struct {
	Code    int    // HTTP status code
	Message string // Response body text
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// Failure kinds of the intake pipeline. Bodies never carry configuration
// values, only the fixed diagnostic text (plus upstream error detail for
// delivery failures).
var (
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Message: "Method Not Allowed"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Message: "Unsupported Media Type"}
	ErrBotDetected          = HTTPError{Code: http.StatusUnprocessableEntity, Message: "Bot detected"}
	ErrServerConfiguration  = HTTPError{Code: http.StatusInternalServerError, Message: "Server configuration error"}
)
