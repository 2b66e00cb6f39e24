package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
)

// In-memory repositories for service tests.

type fakeFlightRepo struct{ flights map[uuid.UUID]*entity.Flight }

func (r *fakeFlightRepo) Create(_ context.Context, f *entity.Flight) error {
	r.flights[f.ID] = f
	return nil
}

func (r *fakeFlightRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Flight, error) {
	return r.flights[id], nil
}

func (r *fakeFlightRepo) FindAll(context.Context) ([]*entity.Flight, error) {
	out := make([]*entity.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		out = append(out, f)
	}
	return out, nil
}

type fakeHotelRepo struct{ hotels map[uuid.UUID]*entity.Hotel }

func (r *fakeHotelRepo) Create(_ context.Context, h *entity.Hotel) error {
	r.hotels[h.ID] = h
	return nil
}

func (r *fakeHotelRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Hotel, error) {
	return r.hotels[id], nil
}

func (r *fakeHotelRepo) FindAll(context.Context) ([]*entity.Hotel, error) {
	out := make([]*entity.Hotel, 0, len(r.hotels))
	for _, h := range r.hotels {
		out = append(out, h)
	}
	return out, nil
}

type fakeRoomRepo struct{ rooms map[uuid.UUID]*entity.Room }

func (r *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	return r.rooms[id], nil
}

func (r *fakeRoomRepo) FindByHotelID(_ context.Context, hotelID uuid.UUID) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range r.rooms {
		if room.HotelID == hotelID {
			out = append(out, room)
		}
	}
	return out, nil
}

type fakeTourRepo struct {
	tours       map[uuid.UUID]*entity.Tour
	addGuestErr error
}

func (r *fakeTourRepo) Create(_ context.Context, t *entity.Tour) error {
	r.tours[t.ID] = t
	return nil
}

func (r *fakeTourRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Tour, error) {
	t, ok := r.tours[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTourRepo) FindAll(_ context.Context, status *entity.TourStatus) ([]*entity.Tour, error) {
	var out []*entity.Tour
	for _, t := range r.tours {
		if status == nil || t.Status == *status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTourRepo) Update(_ context.Context, t *entity.Tour) error {
	if _, ok := r.tours[t.ID]; !ok {
		return errors.New("tour not found or already deleted")
	}
	r.tours[t.ID] = t
	return nil
}

func (r *fakeTourRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tours[id]; !ok {
		return errors.New("tour not found or already deleted")
	}
	delete(r.tours, id)
	return nil
}

func (r *fakeTourRepo) AddGuests(_ context.Context, id uuid.UUID, count int) error {
	if r.addGuestErr != nil {
		return r.addGuestErr
	}
	r.tours[id].CurrentGuests += count
	return nil
}

type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  []*entity.Booking
	creates   int
	createErr error
}

func (r *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.createErr != nil {
		return r.createErr
	}
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) filter(userID uuid.UUID, category *entity.BookingCategory) []*entity.Booking {
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID && (category == nil || b.Category == *category) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, category *entity.BookingCategory, limit, offset int) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.filter(userID, category)
	if offset >= len(all) {
		return nil, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (r *fakeBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID, category *entity.BookingCategory) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.filter(userID, category))), nil
}

type fakeStore struct {
	flights  *fakeFlightRepo
	hotels   *fakeHotelRepo
	rooms    *fakeRoomRepo
	tours    *fakeTourRepo
	bookings *fakeBookingRepo
}

func newFakeStore() (*fakeStore, *repository.Repository) {
	s := &fakeStore{
		flights:  &fakeFlightRepo{flights: map[uuid.UUID]*entity.Flight{}},
		hotels:   &fakeHotelRepo{hotels: map[uuid.UUID]*entity.Hotel{}},
		rooms:    &fakeRoomRepo{rooms: map[uuid.UUID]*entity.Room{}},
		tours:    &fakeTourRepo{tours: map[uuid.UUID]*entity.Tour{}},
		bookings: &fakeBookingRepo{},
	}
	repo := &repository.Repository{
		Flight:  s.flights,
		Hotel:   s.hotels,
		Room:    s.rooms,
		Tour:    s.tours,
		Booking: s.bookings,
		Cache:   repository.NewSnapshotCache(nil, 0, nil),
		Guard:   repository.NewSubmissionGuard(nil, nil),
	}
	return s, repo
}
