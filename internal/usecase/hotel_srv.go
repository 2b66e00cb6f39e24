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

type HotelService interface {
	Search(ctx context.Context, query string) ([]response.HotelResponse, error)
	GetHotelByID(ctx context.Context, hotelID string) (*response.HotelDetailResponse, error)
	GetRooms(ctx context.Context, hotelID string) ([]response.RoomResponse, error)
	CreateHotel(ctx context.Context, req *request.HotelRequest) (*response.HotelDetailResponse, error)
}

type hotelService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHotelService(repo *repository.Repository, log *zap.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) Search(ctx context.Context, query string) ([]response.HotelResponse, error) {
	all, err := s.loadHotels(ctx)
	if err != nil {
		return nil, err
	}

	hotels := FilterHotels(all, query)

	out := make([]response.HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, response.HotelToResponse(h))
	}
	return out, nil
}

func (s *hotelService) GetHotelByID(ctx context.Context, hotelID string) (*response.HotelDetailResponse, error) {
	hotel, err := s.findHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	rooms, err := s.repo.Room.FindByHotelID(ctx, hotel.ID)
	if err != nil {
		s.log.Error("Failed to get rooms for hotel", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("get rooms: %w", err)
	}
	hotel.Rooms = rooms

	resp := response.HotelToDetailResponse(hotel)
	return &resp, nil
}

func (s *hotelService) GetRooms(ctx context.Context, hotelID string) ([]response.RoomResponse, error) {
	hotel, err := s.findHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	rooms, err := s.repo.Room.FindByHotelID(ctx, hotel.ID)
	if err != nil {
		s.log.Error("Failed to get rooms for hotel", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("get rooms: %w", err)
	}
	return response.RoomsToResponse(rooms), nil
}

func (s *hotelService) CreateHotel(ctx context.Context, req *request.HotelRequest) (*response.HotelDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hotel validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	hotel := &entity.Hotel{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:      req.Name,
		Address:   req.Address,
		Location:  req.Location,
		Rating:    req.Rating,
		Images:    req.Images,
		Amenities: req.Amenities,
	}

	if err := s.repo.Hotel.Create(ctx, hotel); err != nil {
		s.log.Error("Failed to create hotel", zap.Error(err))
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	for _, rr := range req.Rooms {
		room := &entity.Room{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			HotelID:       hotel.ID,
			Name:          rr.Name,
			PricePerNight: rr.PricePerNight,
			MaxGuests:     rr.MaxGuests,
			Image:         rr.Image,
		}
		if err := s.repo.Room.Create(ctx, room); err != nil {
			s.log.Error("Failed to create room",
				zap.Error(err),
				zap.String("hotel_id", hotel.ID.String()),
				zap.String("room", rr.Name),
			)
			s.invalidate(ctx)
			return nil, fmt.Errorf("create room: %w", err)
		}
		hotel.Rooms = append(hotel.Rooms, room)
	}

	s.invalidate(ctx)

	s.log.Info("Hotel created",
		zap.String("hotel_id", hotel.ID.String()),
		zap.Int("rooms", len(hotel.Rooms)),
	)

	resp := response.HotelToDetailResponse(hotel)
	return &resp, nil
}

// loadHotels returns every hotel with its rooms, from the snapshot cache
// when present.
func (s *hotelService) loadHotels(ctx context.Context) ([]*entity.Hotel, error) {
	var cached []*entity.Hotel
	hit, err := s.repo.Cache.Get(ctx, repository.CacheKeyHotels, &cached)
	if err != nil {
		s.log.Warn("Hotel snapshot unavailable, reading store", zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	hotels, err := s.repo.Hotel.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load hotels", zap.Error(err))
		return nil, fmt.Errorf("search hotels: %w", err)
	}

	for _, h := range hotels {
		rooms, err := s.repo.Room.FindByHotelID(ctx, h.ID)
		if err != nil {
			s.log.Error("Failed to load rooms", zap.Error(err), zap.String("hotel_id", h.ID.String()))
			return nil, fmt.Errorf("search hotels: %w", err)
		}
		h.Rooms = rooms
	}

	if err := s.repo.Cache.Set(ctx, repository.CacheKeyHotels, hotels); err != nil {
		s.log.Warn("Failed to store hotel snapshot", zap.Error(err))
	}
	return hotels, nil
}

func (s *hotelService) invalidate(ctx context.Context) {
	if err := s.repo.Cache.Invalidate(ctx, repository.CacheKeyHotels); err != nil {
		s.log.Warn("Failed to invalidate hotel snapshot", zap.Error(err))
	}
}

func (s *hotelService) findHotel(ctx context.Context, hotelID string) (*entity.Hotel, error) {
	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel id: %w", err)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get hotel by ID", zap.Error(err), zap.String("hotel_id", hotelID))
		return nil, fmt.Errorf("get hotel by id: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel not found")
	}
	return hotel, nil
}
