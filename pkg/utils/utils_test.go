package utils

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingReference(t *testing.T) {
	id := uuid.MustParse("3f2a9c1b-0000-4000-8000-000000000000")

	assert.Equal(t, "HT-3F2A9C1B", BookingReference("HT", id))
	assert.Equal(t, "FL-3F2A9C1B", BookingReference("FL", id))
}

func TestBookingReference_DistinctIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := BookingReference("TR", uuid.New())
		require.True(t, strings.HasPrefix(ref, "TR-"))
		seen[ref] = true
	}
	// 32 bits of a random uuid, collisions across 1000 draws are practically impossible
	assert.Len(t, seen, 1000)
}

type contactForm struct {
	FullName string `json:"full_name" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(contactForm{FullName: "   ", Email: "nope"})

	require.Len(t, errs, 2)
	assert.Equal(t, "This field is required", errs["full_name"])
	assert.Equal(t, "Invalid email format", errs["email"])
	assert.Equal(t, "email: Invalid email format; full_name: This field is required", FormatValidationErrors(errs))

	assert.Nil(t, ValidateStruct(contactForm{FullName: "Nguyen Van A", Email: "a@example.com"}))
}

func TestParsePagination(t *testing.T) {
	page, perPage := ParsePagination(url.Values{"page": {"3"}, "per_page": {"20"}})
	assert.Equal(t, 3, page)
	assert.Equal(t, 20, perPage)

	page, perPage = ParsePagination(url.Values{"page": {"abc"}, "per_page": {"0"}})
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPerPage, perPage)

	_, perPage = ParsePagination(url.Values{"per_page": {"1000"}})
	assert.Equal(t, MaxPerPage, perPage)
}

func TestCalculatePages(t *testing.T) {
	assert.Equal(t, 3, CalculateTotalPages(21, 10))
	assert.Equal(t, 2, CalculateTotalPages(20, 10))
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 20, CalculateOffset(3, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
}

func TestUserContext(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	id := uuid.New()
	ctx := SetTokenContext(SetUserContext(context.Background(), id, "admin"), "tok")

	got, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	role, _ := GetRoleFromContext(ctx)
	assert.Equal(t, "admin", role)

	token, ok := GetTokenFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "tok", token)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))
}

func TestAppConfigLocation(t *testing.T) {
	assert.Equal(t, "UTC", AppConfig{}.Location().String())
	assert.Equal(t, "UTC", AppConfig{Timezone: "Not/AZone"}.Location().String())
	assert.Equal(t, "Asia/Ho_Chi_Minh", AppConfig{Timezone: "Asia/Ho_Chi_Minh"}.Location().String())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, splitList(" https://a.example, ,https://b.example "))
	assert.Nil(t, splitList(""))
}
