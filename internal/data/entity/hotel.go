package entity

import "github.com/google/uuid"

// Hotel and Room are also stored as JSON by the hotel snapshot cache.
type Hotel struct {
	Base      `bson:",inline"`
	Name      string   `db:"name" bson:"name" json:"name"`
	Address   string   `db:"address" bson:"address" json:"address"`
	Location  string   `db:"location" bson:"location" json:"location"`
	Rating    float64  `db:"rating" bson:"rating" json:"rating"`
	Images    []string `db:"images" bson:"images" json:"images"`
	Amenities []string `db:"amenities" bson:"amenities" json:"amenities"`

	// Rooms is loaded separately from the rooms collection
	Rooms []*Room `db:"-" bson:"-" json:"rooms,omitempty"`
}

type Room struct {
	Base          `bson:",inline"`
	HotelID       uuid.UUID `db:"hotel_id" bson:"hotel_id" json:"hotel_id"`
	Name          string    `db:"name" bson:"name" json:"name"`
	PricePerNight int64     `db:"price_per_night" bson:"price_per_night" json:"price_per_night"`
	MaxGuests     int       `db:"max_guests" bson:"max_guests" json:"max_guests"`
	Image         *string   `db:"image" bson:"image,omitempty" json:"image,omitempty"`
}
