package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"travel-booking/internal/usecase"
	"travel-booking/pkg/sessionhub"
	"travel-booking/pkg/utils"
)

type Handler struct {
	Auth    *AuthHandler
	Session *SessionHandler
	User    *UserHandler
	Flight  *FlightHandler
	Hotel   *HotelHandler
	Tour    *TourHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, hub *sessionhub.Hub, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Session: NewSessionHandler(hub, log),
		User:    NewUserHandler(service.User, log),
		Flight:  NewFlightHandler(service.Flight, log),
		Hotel:   NewHotelHandler(service.Hotel, log),
		Tour:    NewTourHandler(service.Tour, log),
		Booking: NewBookingHandler(service.Booking, service.Invoice, log),
	}
}

// decodeRequest decodes the JSON body into dst and validates it.
// It writes the 400 response itself and reports whether to continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// handleServiceError maps the category phrase carried by service errors to a status code.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "unauthorized"),
		strings.Contains(errMsg, "invalid credentials"),
		strings.Contains(errMsg, "invalid token"):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "deactivated"):
		log.Warn(operation+" failed - account deactivated", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "duplicate submission"),
		strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "already taken"):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "cannot"):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
