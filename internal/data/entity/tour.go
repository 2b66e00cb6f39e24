package entity

import "time"

type TourStatus string

const (
	TourStatusActive    TourStatus = "active"
	TourStatusUpcoming  TourStatus = "upcoming"
	TourStatusCompleted TourStatus = "completed"
	TourStatusCancelled TourStatus = "cancelled"
)

func (s TourStatus) Valid() bool {
	switch s {
	case TourStatusActive, TourStatusUpcoming, TourStatusCompleted, TourStatusCancelled:
		return true
	}
	return false
}

// Bookable reports whether new guests may join the tour.
func (s TourStatus) Bookable() bool {
	return s == TourStatusActive || s == TourStatusUpcoming
}

type TourStep struct {
	Day         int    `json:"day" bson:"day"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

type Tour struct {
	Base          `bson:",inline"`
	Name          string     `db:"name" bson:"name"`
	Location      string     `db:"location" bson:"location"`
	Description   string     `db:"description" bson:"description"`
	Price         int64      `db:"price" bson:"price"`
	DurationDays  int        `db:"duration_days" bson:"duration_days"`
	StartDate     time.Time  `db:"start_date" bson:"start_date"`
	EndDate       time.Time  `db:"end_date" bson:"end_date"`
	MaxGuests     int        `db:"max_guests" bson:"max_guests"`
	CurrentGuests int        `db:"current_guests" bson:"current_guests"`
	Itinerary     []TourStep `db:"itinerary" bson:"itinerary"`
	Included      []string   `db:"included" bson:"included"`
	Status        TourStatus `db:"status" bson:"status"`
}
