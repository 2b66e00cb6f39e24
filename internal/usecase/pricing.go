package usecase

import (
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
)

const (
	MinRoomQuantity = 1
	MaxRoomQuantity = 5
)

// Quantity is a bounded stepper. Max <= 0 means no upper bound.
// Steps past either bound leave the value unchanged.
type Quantity struct {
	value int
	min   int
	max   int
}

func NewQuantity(value, min, max int) Quantity {
	q := Quantity{value: value, min: min, max: max}
	q.value = q.clamp(value)
	return q
}

func NewRoomQuantity(value int) Quantity { return NewQuantity(value, MinRoomQuantity, MaxRoomQuantity) }
func NewAdultCount(value int) Quantity   { return NewQuantity(value, 1, 0) }
func NewChildCount(value int) Quantity   { return NewQuantity(value, 0, 0) }

func (q Quantity) Value() int { return q.value }

// Inc reports whether the value changed.
func (q *Quantity) Inc() bool {
	if q.max > 0 && q.value >= q.max {
		return false
	}
	q.value++
	return true
}

// Dec reports whether the value changed.
func (q *Quantity) Dec() bool {
	if q.value <= q.min {
		return false
	}
	q.value--
	return true
}

func (q Quantity) clamp(v int) int {
	if v < q.min {
		return q.min
	}
	if q.max > 0 && v > q.max {
		return q.max
	}
	return v
}

// HotelTotal is pricePerNight × nights × rooms with rooms clamped to [1,5].
func HotelTotal(pricePerNight int64, nights, rooms int) int64 {
	rooms = NewRoomQuantity(rooms).Value()
	return pricePerNight * int64(nights) * int64(rooms)
}

// ChildPrice is 70% of price rounded half up to a whole unit.
func ChildPrice(price int64) int64 {
	return (price*7 + 5) / 10
}

// InfantPrice is 30% of price rounded half up to a whole unit.
func InfantPrice(price int64) int64 {
	return (price*3 + 5) / 10
}

func TourTotal(price int64, adults, children, infants int) int64 {
	return int64(adults)*price +
		int64(children)*ChildPrice(price) +
		int64(infants)*InfantPrice(price)
}

// FlightTotal charges every passenger the fare of every leg.
func FlightTotal(legs []*entity.Flight, passengers int) int64 {
	var total int64
	for _, leg := range legs {
		if leg != nil {
			total += leg.Price
		}
	}
	return total * int64(passengers)
}

// Nights counts calendar days between check-in and check-out.
func Nights(checkIn, checkOut time.Time) (int, error) {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)

	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 0, fmt.Errorf("invalid stay: check-out must be at least one day after check-in")
	}
	return nights, nil
}
