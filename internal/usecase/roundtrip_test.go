package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightSearch_OneWay(t *testing.T) {
	s := NewFlightSearch(FlightCriteria{From: "HAN", To: "SGN", Date: "2026-11-20"})
	assert.True(t, s.OneWay)
	assert.Equal(t, PhaseSearchingOutbound, s.Phase)
	assert.Equal(t, 1, s.Criteria.Passengers)

	f := newFlight("VN1", "Hà Nội (HAN)", "Hồ Chí Minh (SGN)", time.Now())
	next, err := s.Select(f)
	require.NoError(t, err)
	assert.True(t, next.Done())
	assert.Equal(t, f.ID, next.Outbound.ID)
	assert.Nil(t, next.Return)
}

func TestFlightSearch_RoundTripSwapsRoute(t *testing.T) {
	s := NewFlightSearch(FlightCriteria{
		From:       "Hà Nội (HAN)",
		To:         "Hồ Chí Minh (SGN)",
		Date:       "2026-11-20",
		ReturnDate: "2026-11-25",
		RoundTrip:  true,
		Passengers: 2,
	})
	require.False(t, s.OneWay)

	outbound := newFlight("VN1", "Hà Nội (HAN)", "Hồ Chí Minh (SGN)", time.Now())
	s, err := s.Select(outbound)
	require.NoError(t, err)

	assert.Equal(t, PhaseSearchingReturn, s.Phase)
	assert.Equal(t, "Hồ Chí Minh (SGN)", s.Criteria.From)
	assert.Equal(t, "Hà Nội (HAN)", s.Criteria.To)
	assert.Equal(t, "2026-11-25", s.Criteria.Date)
	assert.Equal(t, 2, s.Criteria.Passengers)
	assert.NotEqual(t, s.Initial.From, s.Criteria.From)
	require.NoError(t, s.Validate())

	back := newFlight("VN2", "Hồ Chí Minh (SGN)", "Hà Nội (HAN)", time.Now())
	s, err = s.Select(back)
	require.NoError(t, err)
	assert.True(t, s.Done())
	assert.Equal(t, outbound.ID, s.Outbound.ID)
	assert.Equal(t, back.ID, s.Return.ID)

	_, err = s.Select(back)
	assert.ErrorContains(t, err, "already completed")
}

func TestFlightSearch_RoundTripWithoutReturnDateIsOneWay(t *testing.T) {
	s := NewFlightSearch(FlightCriteria{From: "HAN", To: "SGN", RoundTrip: true})
	assert.True(t, s.OneWay)
	assert.False(t, s.Initial.RoundTrip)
}

func TestFlightSearch_Validate(t *testing.T) {
	assert.Error(t, FlightSearch{Phase: "bogus", Criteria: FlightCriteria{From: "a", To: "b"}}.Validate())
	assert.Error(t, FlightSearch{Phase: PhaseSearchingReturn, Criteria: FlightCriteria{From: "a", To: "b"}}.Validate())
	assert.Error(t, FlightSearch{Phase: PhaseSearchingOutbound}.Validate())
	assert.NoError(t, NewFlightSearch(FlightCriteria{From: "a", To: "b"}).Validate())
}
