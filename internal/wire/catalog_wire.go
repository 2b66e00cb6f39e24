package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"travel-booking/internal/adaptor"
)

func wireFlight(
	r chi.Router,
	flightHandler *adaptor.FlightHandler,
	auth, admin func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/flights", flightHandler.GetFlights)
	r.Get("/api/flights/{id}", flightHandler.GetFlightByID)
	r.Post("/api/flights/search", flightHandler.Search)
	r.Post("/api/flights/search/select", flightHandler.Select)

	// ==================== ADMIN ROUTES ====================
	r.With(auth, admin).Post("/api/admin/flights", flightHandler.CreateFlight)
}

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	auth, admin func(http.Handler) http.Handler,
) {
	r.Get("/api/hotels", hotelHandler.GetHotels)
	r.Get("/api/hotels/{id}", hotelHandler.GetHotelByID)
	r.Get("/api/hotels/{id}/rooms", hotelHandler.GetRooms)

	r.With(auth, admin).Post("/api/admin/hotels", hotelHandler.CreateHotel)
}

func wireTour(
	r chi.Router,
	tourHandler *adaptor.TourHandler,
	auth, admin func(http.Handler) http.Handler,
) {
	r.Get("/api/tours", tourHandler.GetTours)
	r.Get("/api/tours/{id}", tourHandler.GetTourByID)

	r.Route("/api/admin/tours", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(auth)
		r.Use(admin)

		r.Post("/", tourHandler.CreateTour)
		r.Put("/{id}", tourHandler.UpdateTour)
		r.Delete("/{id}", tourHandler.DeleteTour)
	})
}
