package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-booking/internal/data/entity"
)

func TestHotelTotal(t *testing.T) {
	assert.Equal(t, int64(6_000_000), HotelTotal(1_000_000, 3, 2))
	assert.Equal(t, int64(5_000_000), HotelTotal(1_000_000, 1, 9), "rooms clamp to 5")
	assert.Equal(t, int64(1_000_000), HotelTotal(1_000_000, 1, 0), "rooms clamp to 1")
}

func TestRoomQuantityBounds(t *testing.T) {
	q := NewRoomQuantity(5)
	assert.False(t, q.Inc())
	assert.Equal(t, 5, q.Value())

	q = NewRoomQuantity(1)
	assert.False(t, q.Dec())
	assert.Equal(t, 1, q.Value())

	assert.True(t, q.Inc())
	assert.Equal(t, 2, q.Value())
}

func TestGuestCountBounds(t *testing.T) {
	adults := NewAdultCount(1)
	assert.False(t, adults.Dec())
	assert.Equal(t, 1, adults.Value())

	children := NewChildCount(0)
	assert.False(t, children.Dec())
	for i := 0; i < 20; i++ {
		assert.True(t, children.Inc())
	}
	assert.Equal(t, 20, children.Value())
}

func TestTourTotal(t *testing.T) {
	assert.Equal(t, int64(2_700_000), TourTotal(1_000_000, 2, 1, 0))
	assert.Equal(t, int64(1_000_000+700_000+300_000), TourTotal(1_000_000, 1, 1, 1))
}

func TestTierPricesRoundHalfUp(t *testing.T) {
	// 1_001 × 0.7 = 700.7, × 0.3 = 300.3
	assert.Equal(t, int64(701), ChildPrice(1_001))
	assert.Equal(t, int64(300), InfantPrice(1_001))
	// 5 × 0.7 = 3.5, × 0.3 = 1.5
	assert.Equal(t, int64(4), ChildPrice(5))
	assert.Equal(t, int64(2), InfantPrice(5))
}

func TestFlightTotal(t *testing.T) {
	out := &entity.Flight{Price: 1_200_000}
	back := &entity.Flight{Price: 900_000}

	assert.Equal(t, int64(2_400_000), FlightTotal([]*entity.Flight{out}, 2))
	assert.Equal(t, int64(6_300_000), FlightTotal([]*entity.Flight{out, back}, 3))
	assert.Equal(t, int64(1_200_000), FlightTotal([]*entity.Flight{out, nil}, 1))
}

func TestNights(t *testing.T) {
	in := time.Date(2026, 12, 1, 14, 0, 0, 0, time.UTC)
	out := time.Date(2026, 12, 4, 11, 0, 0, 0, time.UTC)

	n, err := Nights(in, out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = Nights(in, in)
	assert.Error(t, err)

	_, err = Nights(out, in)
	assert.Error(t, err)
}
