package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string                 `json:"id"`
	Reference   string                 `json:"reference"`
	UserID      string                 `json:"user_id"`
	Category    entity.BookingCategory `json:"category"`
	Status      entity.BookingStatus   `json:"status"`
	TotalPrice  int64                  `json:"total_price"`
	ContactInfo entity.ContactInfo     `json:"contact_info"`
	Snapshot    entity.Snapshot        `json:"snapshot"`
	Details     entity.BookingDetails  `json:"details"`
	CreatedAt   time.Time              `json:"created_at"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		Reference:   booking.Reference,
		UserID:      booking.UserID.String(),
		Category:    booking.Category,
		Status:      booking.Status,
		TotalPrice:  booking.TotalPrice,
		ContactInfo: booking.ContactInfo,
		Snapshot:    booking.Snapshot,
		Details:     booking.Details,
		CreatedAt:   booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
