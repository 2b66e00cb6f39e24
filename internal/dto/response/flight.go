package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type FlightResponse struct {
	ID           string    `json:"id"`
	Airline      string    `json:"airline"`
	FlightNumber string    `json:"flight_number"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	DepartAt     time.Time `json:"depart_at"`
	ArriveAt     time.Time `json:"arrive_at"`
	Price        int64     `json:"price"`
	Duration     string    `json:"duration"`
}

// FlightSearchResponse returns the next search state with the matching
// flights for its current leg. Flights is empty once the search completes.
type FlightSearchResponse struct {
	State   any              `json:"state"`
	Flights []FlightResponse `json:"flights"`
}

func FlightToResponse(flight *entity.Flight) FlightResponse {
	return FlightResponse{
		ID:           flight.ID.String(),
		Airline:      flight.Airline,
		FlightNumber: flight.FlightNumber,
		From:         flight.From,
		To:           flight.To,
		DepartAt:     flight.DepartAt,
		ArriveAt:     flight.ArriveAt,
		Price:        flight.Price,
		Duration:     flight.Duration,
	}
}

func FlightsToResponse(flights []*entity.Flight) []FlightResponse {
	out := make([]FlightResponse, 0, len(flights))
	for _, f := range flights {
		out = append(out, FlightToResponse(f))
	}
	return out
}
