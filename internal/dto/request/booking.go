package request

type ContactInfoRequest struct {
	FullName string `json:"full_name" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,notblank,min=9,max=15"`
	Note     string `json:"note,omitempty" validate:"max=500"`
}

type PassengerRequest struct {
	FullName string `json:"full_name" validate:"required,notblank,max=100"`
	Type     string `json:"type" validate:"required,oneof=adult child infant"`
}

type FlightBookingRequest struct {
	FlightID       string             `json:"flight_id" validate:"required,uuid"`
	ReturnFlightID *string            `json:"return_flight_id,omitempty" validate:"omitempty,uuid"`
	Passengers     []PassengerRequest `json:"passengers" validate:"required,min=1,max=9,dive"`
	Contact        ContactInfoRequest `json:"contact"`
}

type HotelBookingRequest struct {
	HotelID      string             `json:"hotel_id" validate:"required,uuid"`
	RoomID       string             `json:"room_id" validate:"required,uuid"`
	CheckIn      string             `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut     string             `json:"check_out" validate:"required,datetime=2006-01-02"`
	RoomQuantity int                `json:"room_quantity" validate:"required,min=1,max=5"`
	Contact      ContactInfoRequest `json:"contact"`
}

type TourBookingRequest struct {
	TourID   string             `json:"tour_id" validate:"required,uuid"`
	Adults   int                `json:"adults" validate:"required,min=1"`
	Children int                `json:"children" validate:"gte=0"`
	Infants  int                `json:"infants" validate:"gte=0"`
	Contact  ContactInfoRequest `json:"contact"`
}

type BookingListRequest struct {
	PaginatedRequest
	Category string `json:"category" validate:"omitempty,oneof=flight hotel tour"`
}
