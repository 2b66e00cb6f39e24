package request

import "encoding/json"

type FlightRequest struct {
	Airline      string `json:"airline" validate:"required,notblank,max=100"`
	FlightNumber string `json:"flight_number" validate:"required,notblank,max=20"`
	From         string `json:"from" validate:"required,notblank,max=100"`
	To           string `json:"to" validate:"required,notblank,max=100"`
	DepartAt     string `json:"depart_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ArriveAt     string `json:"arrive_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Price        int64  `json:"price" validate:"required,min=1"`
	Duration     string `json:"duration" validate:"required,notblank,max=20"`
}

// FlightSearchRequest is a route search. Dates are calendar days in the
// service time zone.
type FlightSearchRequest struct {
	From       string `json:"from" validate:"required,notblank"`
	To         string `json:"to" validate:"required,notblank"`
	Date       string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate string `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RoundTrip  bool   `json:"round_trip"`
	Passengers int    `json:"passengers,omitempty" validate:"omitempty,min=1,max=9"`
}

// SelectFlightRequest carries the search state returned by the previous
// call back to the server together with the chosen flight.
type SelectFlightRequest struct {
	State    json.RawMessage `json:"state" validate:"required"`
	FlightID string          `json:"flight_id" validate:"required,uuid"`
}
