package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type HotelResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Location  string    `json:"location"`
	Rating    float64   `json:"rating"`
	Images    []string  `json:"images"`
	Amenities []string  `json:"amenities"`
	MinPrice  *int64    `json:"min_price,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type HotelDetailResponse struct {
	HotelResponse
	Rooms []RoomResponse `json:"rooms"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	HotelID       string  `json:"hotel_id"`
	Name          string  `json:"name"`
	PricePerNight int64   `json:"price_per_night"`
	MaxGuests     int     `json:"max_guests"`
	Image         *string `json:"image,omitempty"`
}

// Helper converters
func HotelToResponse(hotel *entity.Hotel) HotelResponse {
	resp := HotelResponse{
		ID:        hotel.ID.String(),
		Name:      hotel.Name,
		Address:   hotel.Address,
		Location:  hotel.Location,
		Rating:    hotel.Rating,
		Images:    nonNil(hotel.Images),
		Amenities: nonNil(hotel.Amenities),
		CreatedAt: hotel.CreatedAt,
	}

	for _, room := range hotel.Rooms {
		if resp.MinPrice == nil || room.PricePerNight < *resp.MinPrice {
			price := room.PricePerNight
			resp.MinPrice = &price
		}
	}

	return resp
}

func HotelToDetailResponse(hotel *entity.Hotel) HotelDetailResponse {
	return HotelDetailResponse{
		HotelResponse: HotelToResponse(hotel),
		Rooms:         RoomsToResponse(hotel.Rooms),
	}
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:            room.ID.String(),
		HotelID:       room.HotelID.String(),
		Name:          room.Name,
		PricePerNight: room.PricePerNight,
		MaxGuests:     room.MaxGuests,
		Image:         room.Image,
	}
}

func RoomsToResponse(rooms []*entity.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomToResponse(r))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
