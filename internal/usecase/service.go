package usecase

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"travel-booking/internal/data/repository"
	"travel-booking/pkg/sessionhub"
	"travel-booking/pkg/utils"
)

var errUnauthenticated = errors.New("unauthorized: authentication required")

type Service struct {
	Auth    AuthService
	User    UserService
	Flight  FlightService
	Hotel   HotelService
	Tour    TourService
	Booking BookingService
	Invoice InvoiceService
}

func NewService(repo *repository.Repository, hub *sessionhub.Hub, config *utils.Config, log *zap.Logger) *Service {
	loc := config.App.Location()

	return &Service{
		Auth:    NewAuthService(repo, hub, config, log),
		User:    NewUserService(repo.User, log),
		Flight:  NewFlightService(repo.Flight, loc, log),
		Hotel:   NewHotelService(repo, log),
		Tour:    NewTourService(repo.Tour, loc, log),
		Booking: NewBookingService(repo, config.Booking.SubmitGuard, loc, time.Now, log),
		Invoice: NewInvoiceService(repo.Booking, loc, log),
	}
}
