package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewHotelSnapshot_IsDetachedFromHotel(t *testing.T) {
	hotel := &Hotel{
		Base:      Base{ID: uuid.New()},
		Name:      "Rex Hotel",
		Address:   "141 Nguyễn Huệ, Quận 1, TP.HCM",
		Images:    []string{"a.jpg", "b.jpg"},
		Amenities: []string{"wifi", "pool"},
	}

	snap := NewHotelSnapshot(hotel)
	hotel.Name = "Renamed"
	hotel.Amenities[0] = "spa"

	assert.Equal(t, "Rex Hotel", snap.Name)
	assert.Equal(t, "a.jpg", snap.Image)
	assert.Equal(t, []string{"wifi", "pool"}, snap.Amenities)
}

func TestNewTourSnapshot_IsDetachedFromTour(t *testing.T) {
	tour := &Tour{
		Base:      Base{ID: uuid.New()},
		Name:      "Hạ Long 3N2Đ",
		Price:     3_500_000,
		StartDate: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		Itinerary: []TourStep{{Day: 1, Title: "Đón khách"}},
		Included:  []string{"Xe đưa đón"},
	}

	snap := NewTourSnapshot(tour)
	tour.Price = 1
	tour.Itinerary[0].Title = "changed"
	tour.Included[0] = "changed"

	assert.Equal(t, int64(3_500_000), snap.Price)
	assert.Equal(t, "Đón khách", snap.Itinerary[0].Title)
	assert.Equal(t, "Xe đưa đón", snap.Included[0])
}

func TestBookingCategory(t *testing.T) {
	assert.True(t, BookingCategoryHotel.Valid())
	assert.False(t, BookingCategory("car").Valid())
	assert.Equal(t, "FL", BookingCategoryFlight.ReferencePrefix())
	assert.Equal(t, "TR", BookingCategoryTour.ReferencePrefix())
}

func TestTourStatus(t *testing.T) {
	assert.True(t, TourStatusUpcoming.Valid())
	assert.False(t, TourStatus("archived").Valid())
	assert.True(t, TourStatusActive.Bookable())
	assert.False(t, TourStatusCancelled.Bookable())
}
