package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"travel-booking/internal/adaptor"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	sessionHandler *adaptor.SessionHandler,
	auth func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Get("/api/session", authHandler.Session)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/api/logout", authHandler.Logout)
		// Server-Sent Events stream of session transitions
		r.Get("/api/session/events", sessionHandler.Events)
	})
}
