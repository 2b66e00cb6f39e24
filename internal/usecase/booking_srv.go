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

type BookingService interface {
	CreateFlightBooking(ctx context.Context, req *request.FlightBookingRequest) (*response.BookingResponse, error)
	CreateHotelBooking(ctx context.Context, req *request.HotelBookingRequest) (*response.BookingResponse, error)
	CreateTourBooking(ctx context.Context, req *request.TourBookingRequest) (*response.BookingResponse, error)

	GetUserBookings(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	guardTTL time.Duration
	loc      *time.Location
	now      func() time.Time
	log      *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	guardTTL time.Duration,
	loc *time.Location,
	now func() time.Time,
	log *zap.Logger,
) BookingService {
	if guardTTL <= 0 {
		guardTTL = 5 * time.Second
	}
	return &bookingService{
		repo:     repo,
		guardTTL: guardTTL,
		loc:      loc,
		now:      now,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateFlightBooking(ctx context.Context, req *request.FlightBookingRequest) (_ *response.BookingResponse, err error) {
	itemKey := req.FlightID
	if req.ReturnFlightID != nil {
		itemKey += "+" + *req.ReturnFlightID
	}

	userID, release, err := s.begin(ctx, entity.BookingCategoryFlight, itemKey, req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			release()
		}
	}()

	outbound, err := s.findFlight(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}
	legs := []*entity.Flight{outbound}

	var back *entity.Flight
	if req.ReturnFlightID != nil {
		if *req.ReturnFlightID == req.FlightID {
			return nil, fmt.Errorf("invalid return flight: same as outbound")
		}
		back, err = s.findFlight(ctx, *req.ReturnFlightID)
		if err != nil {
			return nil, err
		}
		// the return leg flies the outbound route in reverse
		if !placeMatches(outbound.To, back.From) || !placeMatches(outbound.From, back.To) {
			return nil, fmt.Errorf("invalid return flight: %s → %s does not return from %s to %s",
				back.From, back.To, outbound.To, outbound.From)
		}
		if !back.DepartAt.After(outbound.ArriveAt) {
			return nil, fmt.Errorf("invalid return flight: departs before outbound arrives")
		}
		legs = append(legs, back)
	}

	passengers := make([]entity.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		passengers = append(passengers, entity.Passenger{FullName: p.FullName, Type: p.Type})
	}

	booking := s.newBooking(userID, entity.BookingCategoryFlight, req.Contact, FlightTotal(legs, len(passengers)))
	booking.Snapshot = entity.Snapshot{
		Flight:       entity.NewFlightSnapshot(outbound),
		ReturnFlight: entity.NewFlightSnapshot(back),
	}
	booking.Details = entity.BookingDetails{
		Passengers: passengers,
		RoundTrip:  back != nil,
	}

	if err := s.persist(ctx, booking); err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CreateHotelBooking(ctx context.Context, req *request.HotelBookingRequest) (_ *response.BookingResponse, err error) {
	userID, release, err := s.begin(ctx, entity.BookingCategoryHotel, req.RoomID, req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			release()
		}
	}()

	checkIn, err := time.ParseInLocation(dateLayout, req.CheckIn, s.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := time.ParseInLocation(dateLayout, req.CheckOut, s.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date: %w", err)
	}
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel id: %w", err)
	}
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		s.log.Error("Failed to get hotel for booking", zap.Error(err), zap.String("hotel_id", req.HotelID))
		return nil, fmt.Errorf("failed to create booking")
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel not found")
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room id: %w", err)
	}
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to get room for booking", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("failed to create booking")
	}
	if room == nil || room.HotelID != hotel.ID {
		return nil, fmt.Errorf("room not found")
	}

	rooms := NewRoomQuantity(req.RoomQuantity).Value()

	booking := s.newBooking(userID, entity.BookingCategoryHotel, req.Contact, HotelTotal(room.PricePerNight, nights, rooms))
	booking.Snapshot = entity.Snapshot{
		Hotel: entity.NewHotelSnapshot(hotel),
		Room:  entity.NewRoomSnapshot(room),
	}
	booking.Details = entity.BookingDetails{
		CheckIn:      &checkIn,
		CheckOut:     &checkOut,
		Nights:       nights,
		RoomQuantity: rooms,
	}

	if err := s.persist(ctx, booking); err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CreateTourBooking(ctx context.Context, req *request.TourBookingRequest) (_ *response.BookingResponse, err error) {
	userID, release, err := s.begin(ctx, entity.BookingCategoryTour, req.TourID, req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			release()
		}
	}()

	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour id: %w", err)
	}
	tour, err := s.repo.Tour.FindByID(ctx, tourID)
	if err != nil {
		s.log.Error("Failed to get tour for booking", zap.Error(err), zap.String("tour_id", req.TourID))
		return nil, fmt.Errorf("failed to create booking")
	}
	if tour == nil {
		return nil, fmt.Errorf("tour not found")
	}

	if !tour.Status.Bookable() {
		return nil, fmt.Errorf("cannot book tour: tour is %s", tour.Status)
	}

	adults := NewAdultCount(req.Adults).Value()
	children := NewChildCount(req.Children).Value()
	infants := NewChildCount(req.Infants).Value()
	guests := adults + children + infants

	if remaining := tour.MaxGuests - tour.CurrentGuests; guests > remaining {
		return nil, fmt.Errorf("cannot book tour: only %d slots left", max(remaining, 0))
	}

	booking := s.newBooking(userID, entity.BookingCategoryTour, req.Contact, TourTotal(tour.Price, adults, children, infants))
	booking.Snapshot = entity.Snapshot{
		Tour: entity.NewTourSnapshot(tour),
	}
	booking.Details = entity.BookingDetails{
		Adults:   adults,
		Children: children,
		Infants:  infants,
	}

	if err := s.persist(ctx, booking); err != nil {
		return nil, err
	}

	// Best effort: the booking stands even if the counter update fails
	if err := s.repo.Tour.AddGuests(ctx, tour.ID, guests); err != nil {
		s.log.Error("Failed to update tour guests",
			zap.Error(err),
			zap.String("tour_id", tour.ID.String()),
			zap.String("reference", booking.Reference),
		)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errUnauthenticated
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var category *entity.BookingCategory
	if req.Category != "" {
		c := entity.BookingCategory(req.Category)
		category = &c
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, category, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("page", req.Page),
		)
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID, category)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(response.BookingsToResponse(bookings), req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := findOwnedBooking(ctx, s.repo.Booking, s.log, bookingID)
	if err != nil {
		return nil, err
	}
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// begin runs the checks shared by every booking category, in order:
// session, input, duplicate submission. Nothing is read or written
// before the session check passes. The returned release func frees the
// submission key; callers run it when the attempt fails.
func (s *bookingService) begin(ctx context.Context, category entity.BookingCategory, itemKey string, req interface{}) (uuid.UUID, func(), error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		s.log.Warn("Booking attempted without session", zap.String("category", string(category)))
		return uuid.Nil, nil, errUnauthenticated
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed",
			zap.String("category", string(category)),
			zap.Any("errors", errs),
		)
		return uuid.Nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	key := fmt.Sprintf("booking:submit:%s:%s:%s", userID, category, itemKey)
	acquired, err := s.repo.Guard.Acquire(ctx, key, s.guardTTL)
	if err != nil {
		s.log.Error("Submission guard failed", zap.Error(err), zap.String("key", key))
		return uuid.Nil, nil, fmt.Errorf("failed to create booking")
	}
	if !acquired {
		s.log.Warn("Duplicate booking submission", zap.String("key", key))
		return uuid.Nil, nil, fmt.Errorf("duplicate submission: booking is already being processed")
	}

	release := func() {
		// the request may already be cancelled; the key must still go
		if err := s.repo.Guard.Release(context.WithoutCancel(ctx), key); err != nil {
			s.log.Warn("Submission key left to expire", zap.Error(err), zap.String("key", key))
		}
	}
	return userID, release, nil
}

func (s *bookingService) newBooking(userID uuid.UUID, category entity.BookingCategory, contact request.ContactInfoRequest, total int64) *entity.Booking {
	id := uuid.New()
	return &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        id,
			CreatedAt: s.now(),
		},
		Reference:  utils.BookingReference(category.ReferencePrefix(), id),
		UserID:     userID,
		Category:   category,
		Status:     entity.BookingStatusSuccess,
		TotalPrice: total,
		ContactInfo: entity.ContactInfo{
			FullName: contact.FullName,
			Email:    contact.Email,
			Phone:    contact.Phone,
			Note:     contact.Note,
		},
	}
}

func (s *bookingService) persist(ctx context.Context, booking *entity.Booking) error {
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to save booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("category", string(booking.Category)),
		)
		return fmt.Errorf("failed to create booking")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("user_id", booking.UserID.String()),
		zap.String("category", string(booking.Category)),
		zap.Int64("total_price", booking.TotalPrice),
	)
	return nil
}

func (s *bookingService) findFlight(ctx context.Context, flightID string) (*entity.Flight, error) {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight id: %w", err)
	}

	flight, err := s.repo.Flight.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get flight for booking", zap.Error(err), zap.String("flight_id", flightID))
		return nil, fmt.Errorf("failed to create booking")
	}
	if flight == nil {
		return nil, fmt.Errorf("flight not found")
	}
	return flight, nil
}

// findOwnedBooking hides bookings of other users behind "not found".
func findOwnedBooking(ctx context.Context, repo repository.BookingRepository, log *zap.Logger, bookingID string) (*entity.Booking, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errUnauthenticated
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id: %w", err)
	}

	booking, err := repo.FindByID(ctx, id)
	if err != nil {
		log.Error("Failed to get booking by ID", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil || booking.UserID != userID {
		return nil, fmt.Errorf("booking not found")
	}
	return booking, nil
}
