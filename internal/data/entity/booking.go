package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusSuccess BookingStatus = "success"
	BookingStatusPending BookingStatus = "pending"
)

// BookingCategory discriminates the variants stored in the single bookings collection.
type BookingCategory string

const (
	BookingCategoryFlight BookingCategory = "flight"
	BookingCategoryHotel  BookingCategory = "hotel"
	BookingCategoryTour   BookingCategory = "tour"
)

func (c BookingCategory) Valid() bool {
	switch c {
	case BookingCategoryFlight, BookingCategoryHotel, BookingCategoryTour:
		return true
	}
	return false
}

// ReferencePrefix is the prefix of the human readable booking reference.
func (c BookingCategory) ReferencePrefix() string {
	switch c {
	case BookingCategoryFlight:
		return "FL"
	case BookingCategoryHotel:
		return "HT"
	case BookingCategoryTour:
		return "TR"
	}
	return "BK"
}

type ContactInfo struct {
	FullName string `json:"full_name" bson:"full_name"`
	Email    string `json:"email" bson:"email"`
	Phone    string `json:"phone" bson:"phone"`
	Note     string `json:"note,omitempty" bson:"note,omitempty"`
}

// Booking is immutable after creation. Snapshot holds copies of the purchased
// items taken at booking time, so later catalogue edits never leak into it.
type Booking struct {
	BaseSimple  `bson:",inline"`
	Reference   string          `db:"reference" bson:"reference"`
	UserID      uuid.UUID       `db:"user_id" bson:"user_id"`
	Category    BookingCategory `db:"category" bson:"category"`
	Status      BookingStatus   `db:"status" bson:"status"`
	TotalPrice  int64           `db:"total_price" bson:"total_price"`
	ContactInfo ContactInfo     `db:"contact_info" bson:"contact_info"`
	Snapshot    Snapshot        `db:"snapshot" bson:"snapshot"`
	Details     BookingDetails  `db:"details" bson:"details"`
}

// Snapshot carries exactly one variant, matching the booking category.
type Snapshot struct {
	Flight       *FlightSnapshot `json:"flight,omitempty" bson:"flight,omitempty"`
	ReturnFlight *FlightSnapshot `json:"return_flight,omitempty" bson:"return_flight,omitempty"`
	Hotel        *HotelSnapshot  `json:"hotel,omitempty" bson:"hotel,omitempty"`
	Room         *RoomSnapshot   `json:"room,omitempty" bson:"room,omitempty"`
	Tour         *TourSnapshot   `json:"tour,omitempty" bson:"tour,omitempty"`
}

type FlightSnapshot struct {
	ID           uuid.UUID `json:"id" bson:"id"`
	Airline      string    `json:"airline" bson:"airline"`
	FlightNumber string    `json:"flight_number" bson:"flight_number"`
	From         string    `json:"from" bson:"from"`
	To           string    `json:"to" bson:"to"`
	DepartAt     time.Time `json:"depart_at" bson:"depart_at"`
	ArriveAt     time.Time `json:"arrive_at" bson:"arrive_at"`
	Price        int64     `json:"price" bson:"price"`
	Duration     string    `json:"duration" bson:"duration"`
}

type HotelSnapshot struct {
	ID        uuid.UUID `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Address   string    `json:"address" bson:"address"`
	Location  string    `json:"location" bson:"location"`
	Rating    float64   `json:"rating" bson:"rating"`
	Image     string    `json:"image,omitempty" bson:"image,omitempty"`
	Amenities []string  `json:"amenities,omitempty" bson:"amenities,omitempty"`
}

type RoomSnapshot struct {
	ID            uuid.UUID `json:"id" bson:"id"`
	Name          string    `json:"name" bson:"name"`
	PricePerNight int64     `json:"price_per_night" bson:"price_per_night"`
	MaxGuests     int       `json:"max_guests" bson:"max_guests"`
}

type TourSnapshot struct {
	ID           uuid.UUID  `json:"id" bson:"id"`
	Name         string     `json:"name" bson:"name"`
	Location     string     `json:"location" bson:"location"`
	Price        int64      `json:"price" bson:"price"`
	DurationDays int        `json:"duration_days" bson:"duration_days"`
	StartDate    time.Time  `json:"start_date" bson:"start_date"`
	EndDate      time.Time  `json:"end_date" bson:"end_date"`
	Itinerary    []TourStep `json:"itinerary,omitempty" bson:"itinerary,omitempty"`
	Included     []string   `json:"included,omitempty" bson:"included,omitempty"`
}

type Passenger struct {
	FullName string `json:"full_name" bson:"full_name"`
	Type     string `json:"type" bson:"type"`
}

// BookingDetails holds the variant specific fields of a booking.
type BookingDetails struct {
	// hotel
	CheckIn      *time.Time `json:"check_in,omitempty" bson:"check_in,omitempty"`
	CheckOut     *time.Time `json:"check_out,omitempty" bson:"check_out,omitempty"`
	Nights       int        `json:"nights,omitempty" bson:"nights,omitempty"`
	RoomQuantity int        `json:"room_quantity,omitempty" bson:"room_quantity,omitempty"`

	// flight
	Passengers []Passenger `json:"passengers,omitempty" bson:"passengers,omitempty"`
	RoundTrip  bool        `json:"round_trip,omitempty" bson:"round_trip,omitempty"`

	// tour
	Adults   int `json:"adults,omitempty" bson:"adults,omitempty"`
	Children int `json:"children,omitempty" bson:"children,omitempty"`
	Infants  int `json:"infants,omitempty" bson:"infants,omitempty"`
}

func NewFlightSnapshot(f *Flight) *FlightSnapshot {
	if f == nil {
		return nil
	}
	return &FlightSnapshot{
		ID:           f.ID,
		Airline:      f.Airline,
		FlightNumber: f.FlightNumber,
		From:         f.From,
		To:           f.To,
		DepartAt:     f.DepartAt,
		ArriveAt:     f.ArriveAt,
		Price:        f.Price,
		Duration:     f.Duration,
	}
}

func NewHotelSnapshot(h *Hotel) *HotelSnapshot {
	if h == nil {
		return nil
	}
	snap := &HotelSnapshot{
		ID:        h.ID,
		Name:      h.Name,
		Address:   h.Address,
		Location:  h.Location,
		Rating:    h.Rating,
		Amenities: append([]string(nil), h.Amenities...),
	}
	if len(h.Images) > 0 {
		snap.Image = h.Images[0]
	}
	return snap
}

func NewRoomSnapshot(r *Room) *RoomSnapshot {
	if r == nil {
		return nil
	}
	return &RoomSnapshot{
		ID:            r.ID,
		Name:          r.Name,
		PricePerNight: r.PricePerNight,
		MaxGuests:     r.MaxGuests,
	}
}

func NewTourSnapshot(t *Tour) *TourSnapshot {
	if t == nil {
		return nil
	}
	return &TourSnapshot{
		ID:           t.ID,
		Name:         t.Name,
		Location:     t.Location,
		Price:        t.Price,
		DurationDays: t.DurationDays,
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		Itinerary:    append([]TourStep(nil), t.Itinerary...),
		Included:     append([]string(nil), t.Included...),
	}
}
