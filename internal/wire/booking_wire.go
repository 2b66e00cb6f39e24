package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"travel-booking/internal/adaptor"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, auth func(http.Handler) http.Handler) {
	// Every booking route requires a session; a 401 sends the client to login
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/api/bookings/flight", bookingHandler.CreateFlightBooking)
		r.Post("/api/bookings/hotel", bookingHandler.CreateHotelBooking)
		r.Post("/api/bookings/tour", bookingHandler.CreateTourBooking)

		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)
		r.Get("/api/bookings/{id}/invoice", bookingHandler.GetInvoice)
	})
}
