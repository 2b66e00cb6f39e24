package wire

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/sessionhub"
	"travel-booking/pkg/utils"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of the repositories
func Wiring(repo *repository.Repository, hub *sessionhub.Hub, config *utils.Config, logger *zap.Logger) (*App, error) {
	service := usecase.NewService(repo, hub, config, logger)
	handler := adaptor.NewHandler(service, hub, logger)

	router, err := setupRouter(handler, repo, config, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Router: router,
	}, nil
}

func setupRouter(handler *adaptor.Handler, repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*chi.Mux, error) {
	compress, err := middleware.Compress()
	if err != nil {
		return nil, fmt.Errorf("init compression: %w", err)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))
	r.Use(compress)

	auth := middleware.AuthSession(repo.Session, repo.User, logger)
	admin := middleware.Admin(logger)

	wireAuth(r, handler.Auth, handler.Session, auth)
	wireUser(r, handler.User, auth)
	wireFlight(r, handler.Flight, auth, admin)
	wireHotel(r, handler.Hotel, auth, admin)
	wireTour(r, handler.Tour, auth, admin)
	wireBooking(r, handler.Booking, auth)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r, nil
}
