package adaptor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// GetFlights handles GET /api/flights
func (h *FlightHandler) GetFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.GetFlights(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// GetFlightByID handles GET /api/flights/{id}
func (h *FlightHandler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	flight, err := h.service.GetFlightByID(r.Context(), flightID)
	if err != nil {
		handleServiceError(w, h.log, err, "get flight by ID")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// Search handles POST /api/flights/search. The response carries the search
// state the client sends back with its selection.
func (h *FlightHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req request.FlightSearchRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	result, err := h.service.Search(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "search flights")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// Select handles POST /api/flights/search/select
func (h *FlightHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req request.SelectFlightRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	result, err := h.service.Select(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select flight")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// CreateFlight handles POST /api/admin/flights (admin only)
func (h *FlightHandler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req request.FlightRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	flight, err := h.service.CreateFlight(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create flight")
		return
	}

	utils.ResponseCreated(w, "Flight created", flight)
}
