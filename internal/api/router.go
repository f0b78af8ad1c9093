// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"finledger/internal/api/handler"
	"finledger/internal/api/middleware"
	"finledger/internal/token"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(userHandler *handler.UserHandler, statementHandler *handler.StatementHandler, tokens token.Manager, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", userHandler.Create)
		r.Post("/sessions", userHandler.Authenticate)

		// Everything below requires a valid access token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens))

			r.Get("/profile", userHandler.Profile)

			r.Route("/statements", func(r chi.Router) {
				r.Post("/deposit", statementHandler.Deposit)
				r.Post("/withdraw", statementHandler.Withdraw)
				r.Post("/transfers/{recipientID}", statementHandler.Transfer)
				r.Get("/balance", statementHandler.GetBalance)
				r.Get("/{statementID}", statementHandler.GetStatementOperation)
			})
		})
	})

	return r
}
