package adaptor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"
)

type BookingHandler struct {
	service usecase.BookingService
	invoice usecase.InvoiceService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, invoice usecase.InvoiceService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		invoice: invoice,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateFlightBooking handles POST /api/bookings/flight (protected)
func (h *BookingHandler) CreateFlightBooking(w http.ResponseWriter, r *http.Request) {
	var req request.FlightBookingRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	booking, err := h.service.CreateFlightBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create flight booking")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", booking)
}

// CreateHotelBooking handles POST /api/bookings/hotel (protected)
func (h *BookingHandler) CreateHotelBooking(w http.ResponseWriter, r *http.Request) {
	var req request.HotelBookingRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	booking, err := h.service.CreateHotelBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hotel booking")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", booking)
}

// CreateTourBooking handles POST /api/bookings/tour (protected)
func (h *BookingHandler) CreateTourBooking(w http.ResponseWriter, r *http.Request) {
	var req request.TourBookingRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	booking, err := h.service.CreateTourBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create tour booking")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", booking)
}

// GetUserBookings handles GET /api/user/bookings?category=&page=&per_page= (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, perPage := utils.ParsePagination(query)
	req := &request.BookingListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: page, PerPage: perPage},
		Category:         query.Get("category"),
	}

	bookings, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id} (protected, owner only)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBookingByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetInvoice handles GET /api/bookings/{id}/invoice (protected, owner only)
func (h *BookingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	html, err := h.invoice.Render(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "render invoice")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(html); err != nil {
		h.log.Debug("Failed to write invoice", zap.Error(err))
	}
}
