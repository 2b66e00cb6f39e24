package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "1.250.000 ₫", FormatVND(1_250_000))
	assert.Equal(t, "0 ₫", FormatVND(0))
}

func TestInvoiceRender(t *testing.T) {
	store, repo := newFakeStore()
	loc := mustLocation("Asia/Ho_Chi_Minh")
	bookings := NewBookingService(repo, 0, loc, func() time.Time { return fixedNow }, zap.NewNop())
	invoices := NewInvoiceService(repo.Booking, loc, zap.NewNop())

	tour := seedTour(store, 1_000_000, 10, 0, entity.TourStatusActive)
	tour.Name = "Ha Long | Bay"
	owner := uuid.New()

	resp, err := bookings.CreateTourBooking(userContext(owner), &request.TourBookingRequest{
		TourID:   tour.ID.String(),
		Adults:   2,
		Children: 1,
		Contact:  testContact(),
	})
	require.NoError(t, err)

	html, err := invoices.Render(userContext(owner), resp.ID)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, resp.Reference)
	assert.Contains(t, out, "2.700.000 ₫")
	assert.Contains(t, out, "Ha Long | Bay")

	_, err = invoices.Render(userContext(uuid.New()), resp.ID)
	require.Error(t, err)
	assert.Equal(t, "booking not found", err.Error())
}
