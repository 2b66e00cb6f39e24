package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type TourResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Location       string            `json:"location"`
	Description    string            `json:"description"`
	Price          int64             `json:"price"`
	DurationDays   int               `json:"duration_days"`
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	MaxGuests      int               `json:"max_guests"`
	CurrentGuests  int               `json:"current_guests"`
	AvailableSlots int               `json:"available_slots"`
	Itinerary      []entity.TourStep `json:"itinerary"`
	Included       []string          `json:"included"`
	Status         entity.TourStatus `json:"status"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func TourToResponse(tour *entity.Tour) TourResponse {
	available := tour.MaxGuests - tour.CurrentGuests
	if available < 0 {
		available = 0
	}

	itinerary := tour.Itinerary
	if itinerary == nil {
		itinerary = []entity.TourStep{}
	}

	return TourResponse{
		ID:             tour.ID.String(),
		Name:           tour.Name,
		Location:       tour.Location,
		Description:    tour.Description,
		Price:          tour.Price,
		DurationDays:   tour.DurationDays,
		StartDate:      tour.StartDate.Format("2006-01-02"),
		EndDate:        tour.EndDate.Format("2006-01-02"),
		MaxGuests:      tour.MaxGuests,
		CurrentGuests:  tour.CurrentGuests,
		AvailableSlots: available,
		Itinerary:      itinerary,
		Included:       nonNil(tour.Included),
		Status:         tour.Status,
		UpdatedAt:      tour.UpdatedAt,
	}
}

func ToursToResponse(tours []*entity.Tour) []TourResponse {
	out := make([]TourResponse, 0, len(tours))
	for _, t := range tours {
		out = append(out, TourToResponse(t))
	}
	return out
}
