package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"travel-booking/internal/adaptor"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, auth func(http.Handler) http.Handler) {
	r.With(auth).Get("/api/users/profile", userHandler.GetProfile)
}
