package adaptor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"
)

type TourHandler struct {
	service usecase.TourService
	log     *zap.Logger
}

func NewTourHandler(service usecase.TourService, log *zap.Logger) *TourHandler {
	return &TourHandler{
		service: service,
		log:     log.With(zap.String("handler", "tour")),
	}
}

// GetTours handles GET /api/tours?q=&status=
func (h *TourHandler) GetTours(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.TourListRequest{
		Query:  query.Get("q"),
		Status: query.Get("status"),
	}

	tours, err := h.service.GetTours(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get tours")
		return
	}

	utils.ResponseSuccess(w, "success", tours)
}

// GetTourByID handles GET /api/tours/{id}
func (h *TourHandler) GetTourByID(w http.ResponseWriter, r *http.Request) {
	tour, err := h.service.GetTourByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get tour by ID")
		return
	}

	utils.ResponseSuccess(w, "success", tour)
}

// CreateTour handles POST /api/admin/tours (admin only)
func (h *TourHandler) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req request.TourRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tour, err := h.service.CreateTour(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create tour")
		return
	}

	utils.ResponseCreated(w, "Tour created", tour)
}

// UpdateTour handles PUT /api/admin/tours/{id} (admin only)
func (h *TourHandler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	var req request.TourRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tour, err := h.service.UpdateTour(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update tour")
		return
	}

	utils.ResponseSuccess(w, "Tour updated", tour)
}

// DeleteTour handles DELETE /api/admin/tours/{id} (admin only)
func (h *TourHandler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTour(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete tour")
		return
	}

	utils.ResponseSuccess(w, "Tour deleted", nil)
}
