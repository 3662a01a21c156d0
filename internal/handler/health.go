package handler

import (
	"net/http"
)

const healthBody = "Intake service is up and running!"

// Health returns the health-check handler: 200 with a static confirmation
// string for GET and POST, 405 for anything else.
func Health() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodPost:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(healthBody))
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
}
