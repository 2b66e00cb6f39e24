package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"
)

type FlightService interface {
	GetFlights(ctx context.Context) ([]response.FlightResponse, error)
	GetFlightByID(ctx context.Context, flightID string) (*response.FlightResponse, error)
	CreateFlight(ctx context.Context, req *request.FlightRequest) (*response.FlightResponse, error)

	Search(ctx context.Context, req *request.FlightSearchRequest) (*response.FlightSearchResponse, error)
	Select(ctx context.Context, req *request.SelectFlightRequest) (*response.FlightSearchResponse, error)
}

type flightService struct {
	flightRepo repository.FlightRepository
	loc        *time.Location
	log        *zap.Logger
}

func NewFlightService(flightRepo repository.FlightRepository, loc *time.Location, log *zap.Logger) FlightService {
	return &flightService{
		flightRepo: flightRepo,
		loc:        loc,
		log:        log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) GetFlights(ctx context.Context) ([]response.FlightResponse, error) {
	flights, err := s.flightRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get flights", zap.Error(err))
		return nil, fmt.Errorf("get flights: %w", err)
	}
	return response.FlightsToResponse(flights), nil
}

func (s *flightService) GetFlightByID(ctx context.Context, flightID string) (*response.FlightResponse, error) {
	flight, err := s.findFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}
	resp := response.FlightToResponse(flight)
	return &resp, nil
}

func (s *flightService) CreateFlight(ctx context.Context, req *request.FlightRequest) (*response.FlightResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create flight validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	departAt, err := time.Parse(time.RFC3339, req.DepartAt)
	if err != nil {
		return nil, fmt.Errorf("invalid depart_at: %w", err)
	}
	arriveAt, err := time.Parse(time.RFC3339, req.ArriveAt)
	if err != nil {
		return nil, fmt.Errorf("invalid arrive_at: %w", err)
	}
	if !arriveAt.After(departAt) {
		return nil, fmt.Errorf("invalid schedule: arrival must be after departure")
	}

	now := time.Now()
	flight := &entity.Flight{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Airline:      req.Airline,
		FlightNumber: req.FlightNumber,
		From:         req.From,
		To:           req.To,
		DepartAt:     departAt,
		ArriveAt:     arriveAt,
		Price:        req.Price,
		Duration:     req.Duration,
	}

	if err := s.flightRepo.Create(ctx, flight); err != nil {
		s.log.Error("Failed to create flight", zap.Error(err))
		return nil, fmt.Errorf("create flight: %w", err)
	}

	s.log.Info("Flight created",
		zap.String("flight_id", flight.ID.String()),
		zap.String("flight_number", flight.FlightNumber),
	)

	resp := response.FlightToResponse(flight)
	return &resp, nil
}

// Search starts a new search and returns the outbound candidates.
func (s *flightService) Search(ctx context.Context, req *request.FlightSearchRequest) (*response.FlightSearchResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Flight search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if req.RoundTrip && req.ReturnDate != "" && req.Date != "" && req.ReturnDate < req.Date {
		return nil, fmt.Errorf("invalid search: return date is before departure date")
	}

	state := NewFlightSearch(FlightCriteria{
		From:       req.From,
		To:         req.To,
		Date:       req.Date,
		ReturnDate: req.ReturnDate,
		RoundTrip:  req.RoundTrip,
		Passengers: req.Passengers,
	})

	flights, err := s.searchLeg(ctx, state.Criteria)
	if err != nil {
		return nil, err
	}

	return &response.FlightSearchResponse{
		State:   state,
		Flights: response.FlightsToResponse(flights),
	}, nil
}

// Select advances a client-held search state with the chosen flight.
func (s *flightService) Select(ctx context.Context, req *request.SelectFlightRequest) (*response.FlightSearchResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Flight select validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var state FlightSearch
	if err := json.Unmarshal(req.State, &state); err != nil {
		return nil, fmt.Errorf("invalid search state: %w", err)
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	flight, err := s.findFlight(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}

	matching, err := FilterFlights([]*entity.Flight{flight}, state.Criteria, s.loc)
	if err != nil {
		return nil, err
	}
	if len(matching) == 0 {
		return nil, fmt.Errorf("invalid selection: flight does not match the current search")
	}

	next, err := state.Select(flight)
	if err != nil {
		return nil, err
	}

	resp := &response.FlightSearchResponse{State: next, Flights: []response.FlightResponse{}}
	if next.Done() {
		s.log.Info("Flight search completed",
			zap.Bool("one_way", next.OneWay),
			zap.String("outbound", next.Outbound.FlightNumber),
		)
		return resp, nil
	}

	flights, err := s.searchLeg(ctx, next.Criteria)
	if err != nil {
		return nil, err
	}
	resp.Flights = response.FlightsToResponse(flights)
	return resp, nil
}

func (s *flightService) searchLeg(ctx context.Context, c FlightCriteria) ([]*entity.Flight, error) {
	all, err := s.flightRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load flights for search", zap.Error(err))
		return nil, fmt.Errorf("search flights: %w", err)
	}

	flights, err := FilterFlights(all, c, s.loc)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Flight search",
		zap.String("from", c.From),
		zap.String("to", c.To),
		zap.String("date", c.Date),
		zap.Int("matches", len(flights)),
	)
	return flights, nil
}

func (s *flightService) findFlight(ctx context.Context, flightID string) (*entity.Flight, error) {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight id: %w", err)
	}

	flight, err := s.flightRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get flight by ID", zap.Error(err), zap.String("flight_id", flightID))
		return nil, fmt.Errorf("get flight by id: %w", err)
	}
	if flight == nil {
		return nil, fmt.Errorf("flight not found")
	}
	return flight, nil
}
