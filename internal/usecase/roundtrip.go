package usecase

import (
	"fmt"

	"travel-booking/internal/data/entity"
)

type SearchPhase string

const (
	PhaseSearchingOutbound SearchPhase = "searching_outbound"
	PhaseSearchingReturn   SearchPhase = "searching_return"
	PhaseCompleted         SearchPhase = "completed"
)

// FlightSearch is the round-trip search state. It is a plain value: the
// client receives it with each result page and sends it back with the
// next selection, the server keeps nothing in between.
type FlightSearch struct {
	Phase    SearchPhase            `json:"phase"`
	OneWay   bool                   `json:"one_way"`
	Initial  FlightCriteria         `json:"initial"`
	Criteria FlightCriteria         `json:"criteria"`
	Outbound *entity.FlightSnapshot `json:"outbound,omitempty"`
	Return   *entity.FlightSnapshot `json:"return,omitempty"`
}

func NewFlightSearch(c FlightCriteria) FlightSearch {
	oneWay := !c.RoundTrip || c.ReturnDate == ""
	if c.Passengers < 1 {
		c.Passengers = 1
	}
	if oneWay {
		c.RoundTrip = false
	}
	return FlightSearch{
		Phase:    PhaseSearchingOutbound,
		OneWay:   oneWay,
		Initial:  c,
		Criteria: c,
	}
}

// Select records the chosen flight for the current leg and returns the
// next state. In the outbound phase of a round trip the criteria are
// reversed for the return leg.
func (s FlightSearch) Select(f *entity.Flight) (FlightSearch, error) {
	if f == nil {
		return s, fmt.Errorf("invalid selection: no flight")
	}

	switch s.Phase {
	case PhaseSearchingOutbound:
		s.Outbound = entity.NewFlightSnapshot(f)
		if s.OneWay {
			s.Phase = PhaseCompleted
			return s, nil
		}
		s.Criteria = FlightCriteria{
			From:       s.Initial.To,
			To:         s.Initial.From,
			Date:       s.Initial.ReturnDate,
			RoundTrip:  true,
			Passengers: s.Initial.Passengers,
		}
		s.Phase = PhaseSearchingReturn
		return s, nil

	case PhaseSearchingReturn:
		s.Return = entity.NewFlightSnapshot(f)
		s.Phase = PhaseCompleted
		return s, nil

	case PhaseCompleted:
		return s, fmt.Errorf("invalid selection: search already completed")
	}

	return s, fmt.Errorf("invalid search state: unknown phase %q", s.Phase)
}

// Validate checks a state received from a client.
func (s FlightSearch) Validate() error {
	switch s.Phase {
	case PhaseSearchingOutbound:
		if s.Outbound != nil || s.Return != nil {
			return fmt.Errorf("invalid search state: outbound phase with a selection")
		}
	case PhaseSearchingReturn:
		if s.OneWay || s.Outbound == nil {
			return fmt.Errorf("invalid search state: return phase without outbound")
		}
	case PhaseCompleted:
		if s.Outbound == nil || (!s.OneWay && s.Return == nil) {
			return fmt.Errorf("invalid search state: incomplete selection")
		}
	default:
		return fmt.Errorf("invalid search state: unknown phase %q", s.Phase)
	}

	if s.Criteria.From == "" || s.Criteria.To == "" {
		return fmt.Errorf("invalid search state: missing route")
	}
	return nil
}

// Done reports whether both legs (or the single one-way leg) are chosen.
func (s FlightSearch) Done() bool {
	return s.Phase == PhaseCompleted
}
