package usecase

import (
	"context"
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

type TourService interface {
	GetTours(ctx context.Context, req *request.TourListRequest) ([]response.TourResponse, error)
	GetTourByID(ctx context.Context, tourID string) (*response.TourResponse, error)
	CreateTour(ctx context.Context, req *request.TourRequest) (*response.TourResponse, error)
	UpdateTour(ctx context.Context, tourID string, req *request.TourRequest) (*response.TourResponse, error)
	DeleteTour(ctx context.Context, tourID string) error
}

type tourService struct {
	tourRepo repository.TourRepository
	loc      *time.Location
	log      *zap.Logger
}

func NewTourService(tourRepo repository.TourRepository, loc *time.Location, log *zap.Logger) TourService {
	return &tourService{
		tourRepo: tourRepo,
		loc:      loc,
		log:      log.With(zap.String("service", "tour")),
	}
}

func (s *tourService) GetTours(ctx context.Context, req *request.TourListRequest) ([]response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var status *entity.TourStatus
	if req.Status != "" {
		st := entity.TourStatus(req.Status)
		status = &st
	}

	tours, err := s.tourRepo.FindAll(ctx, status)
	if err != nil {
		s.log.Error("Failed to get tours", zap.Error(err), zap.String("status", req.Status))
		return nil, fmt.Errorf("get tours: %w", err)
	}

	return response.ToursToResponse(FilterTours(tours, req.Query)), nil
}

func (s *tourService) GetTourByID(ctx context.Context, tourID string) (*response.TourResponse, error) {
	tour, err := s.findTour(ctx, tourID)
	if err != nil {
		return nil, err
	}
	resp := response.TourToResponse(tour)
	return &resp, nil
}

func (s *tourService) CreateTour(ctx context.Context, req *request.TourRequest) (*response.TourResponse, error) {
	now := time.Now()
	tour := &entity.Tour{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.apply(tour, req); err != nil {
		s.log.Warn("Create tour rejected", zap.Error(err))
		return nil, err
	}

	if err := s.tourRepo.Create(ctx, tour); err != nil {
		s.log.Error("Failed to create tour", zap.Error(err))
		return nil, fmt.Errorf("create tour: %w", err)
	}

	s.log.Info("Tour created",
		zap.String("tour_id", tour.ID.String()),
		zap.String("name", tour.Name),
	)

	resp := response.TourToResponse(tour)
	return &resp, nil
}

// UpdateTour replaces the whole document, status included.
func (s *tourService) UpdateTour(ctx context.Context, tourID string, req *request.TourRequest) (*response.TourResponse, error) {
	tour, err := s.findTour(ctx, tourID)
	if err != nil {
		return nil, err
	}

	if err := s.apply(tour, req); err != nil {
		s.log.Warn("Update tour rejected", zap.Error(err), zap.String("tour_id", tourID))
		return nil, err
	}
	tour.UpdatedAt = time.Now()

	if err := s.tourRepo.Update(ctx, tour); err != nil {
		s.log.Error("Failed to update tour", zap.Error(err), zap.String("tour_id", tourID))
		return nil, fmt.Errorf("update tour: %w", err)
	}

	s.log.Info("Tour updated",
		zap.String("tour_id", tourID),
		zap.String("status", string(tour.Status)),
	)

	resp := response.TourToResponse(tour)
	return &resp, nil
}

func (s *tourService) DeleteTour(ctx context.Context, tourID string) error {
	tour, err := s.findTour(ctx, tourID)
	if err != nil {
		return err
	}

	if err := s.tourRepo.Delete(ctx, tour.ID); err != nil {
		s.log.Error("Failed to delete tour", zap.Error(err), zap.String("tour_id", tourID))
		return fmt.Errorf("delete tour: %w", err)
	}
	return nil
}

// apply validates req and copies it onto tour.
func (s *tourService) apply(tour *entity.Tour, req *request.TourRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status := entity.TourStatus(req.Status)
	if !status.Valid() {
		return fmt.Errorf("invalid tour status: %s", req.Status)
	}

	startDate, err := time.ParseInLocation(dateLayout, req.StartDate, s.loc)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	endDate, err := time.ParseInLocation(dateLayout, req.EndDate, s.loc)
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}
	if endDate.Before(startDate) {
		return fmt.Errorf("invalid dates: end date is before start date")
	}
	if req.CurrentGuests > req.MaxGuests {
		return fmt.Errorf("invalid capacity: current guests exceed max guests")
	}

	itinerary := make([]entity.TourStep, 0, len(req.Itinerary))
	for _, step := range req.Itinerary {
		itinerary = append(itinerary, entity.TourStep{
			Day:         step.Day,
			Title:       step.Title,
			Description: step.Description,
		})
	}

	tour.Name = req.Name
	tour.Location = req.Location
	tour.Description = req.Description
	tour.Price = req.Price
	tour.DurationDays = req.DurationDays
	tour.StartDate = startDate
	tour.EndDate = endDate
	tour.MaxGuests = req.MaxGuests
	tour.CurrentGuests = req.CurrentGuests
	tour.Itinerary = itinerary
	tour.Included = append([]string(nil), req.Included...)
	tour.Status = status
	return nil
}

func (s *tourService) findTour(ctx context.Context, tourID string) (*entity.Tour, error) {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour id: %w", err)
	}

	tour, err := s.tourRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get tour by ID", zap.Error(err), zap.String("tour_id", tourID))
		return nil, fmt.Errorf("get tour by id: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("tour not found")
	}
	return tour, nil
}
