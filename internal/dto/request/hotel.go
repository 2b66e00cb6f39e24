package request

type HotelRequest struct {
	Name      string        `json:"name" validate:"required,notblank,max=200"`
	Address   string        `json:"address" validate:"required,notblank"`
	Location  string        `json:"location" validate:"required,notblank,max=100"`
	Rating    float64       `json:"rating" validate:"gte=0,lte=5"`
	Images    []string      `json:"images,omitempty" validate:"dive,url"`
	Amenities []string      `json:"amenities,omitempty" validate:"dive,notblank"`
	Rooms     []RoomRequest `json:"rooms,omitempty" validate:"dive"`
}

type RoomRequest struct {
	Name          string  `json:"name" validate:"required,notblank,max=100"`
	PricePerNight int64   `json:"price_per_night" validate:"required,min=1"`
	MaxGuests     int     `json:"max_guests" validate:"required,min=1"`
	Image         *string `json:"image,omitempty" validate:"omitempty,url"`
}

