package request

type TourStepRequest struct {
	Day         int    `json:"day" validate:"required,min=1"`
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description"`
}

// TourRequest is used for both create and full-document update.
type TourRequest struct {
	Name          string            `json:"name" validate:"required,notblank,max=200"`
	Location      string            `json:"location" validate:"required,notblank,max=100"`
	Description   string            `json:"description"`
	Price         int64             `json:"price" validate:"required,min=1"`
	DurationDays  int               `json:"duration_days" validate:"required,min=1"`
	StartDate     string            `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string            `json:"end_date" validate:"required,datetime=2006-01-02"`
	MaxGuests     int               `json:"max_guests" validate:"required,min=1"`
	CurrentGuests int               `json:"current_guests" validate:"gte=0"`
	Itinerary     []TourStepRequest `json:"itinerary,omitempty" validate:"dive"`
	Included      []string          `json:"included,omitempty" validate:"dive,notblank"`
	Status        string            `json:"status" validate:"required,oneof=active upcoming completed cancelled"`
}

type TourListRequest struct {
	Query  string `json:"q"`
	Status string `json:"status" validate:"omitempty,oneof=active upcoming completed cancelled"`
}
