package adaptor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// GetHotels handles GET /api/hotels?q=
func (h *HotelHandler) GetHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "search hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// GetHotelByID handles GET /api/hotels/{id}
func (h *HotelHandler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.service.GetHotelByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel by ID")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// GetRooms handles GET /api/hotels/{id}/rooms
func (h *HotelHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetRooms(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// CreateHotel handles POST /api/admin/hotels (admin only)
func (h *HotelHandler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var req request.HotelRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	hotel, err := h.service.CreateHotel(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hotel")
		return
	}

	utils.ResponseCreated(w, "Hotel created", hotel)
}
