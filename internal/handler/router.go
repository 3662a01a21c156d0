package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rapidsites/intake/pkg/requestid"
)

// NewRouter assembles the HTTP surface. Method validation happens inside
// the handlers so each endpoint controls its own 405 body.
func NewRouter(log *slog.Logger, intake *Intake) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(Recoverer(log))

	r.Handle("/api/send-intake", intake)
	r.Handle("/api/health", Health())

	return r
}
