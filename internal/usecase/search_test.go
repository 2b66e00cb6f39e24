package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-booking/internal/data/entity"
)

var saigon = mustLocation("Asia/Ho_Chi_Minh")

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func newFlight(number, from, to string, departAt time.Time) *entity.Flight {
	return &entity.Flight{
		Base:         entity.Base{ID: uuid.New()},
		Airline:      "Vietnam Airlines",
		FlightNumber: number,
		From:         from,
		To:           to,
		DepartAt:     departAt,
		ArriveAt:     departAt.Add(2 * time.Hour),
		Price:        1_500_000,
		Duration:     "2h",
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hồ Chí Minh", "ho chi minh"},
		{"  ĐÀ   Nẵng ", "da nang"},
		{"Hà Nội", "ha noi"},
		{"TP.HCM", "tp.hcm"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestSplitPlace(t *testing.T) {
	name, code := SplitPlace("Hà Nội (HAN)")
	assert.Equal(t, "Hà Nội", name)
	assert.Equal(t, "HAN", code)

	name, code = SplitPlace("Đà Nẵng")
	assert.Equal(t, "Đà Nẵng", name)
	assert.Empty(t, code)

	_, code = SplitPlace("Hồ Chí Minh (sgn) ")
	assert.Equal(t, "SGN", code)
}

func TestFilterHotels_EmptyQueryIsIdentity(t *testing.T) {
	hotels := []*entity.Hotel{
		{Name: "Rex", Address: "141 Nguyễn Huệ", Location: "Hồ Chí Minh"},
		{Name: "Metropole", Address: "15 Ngô Quyền", Location: "Hà Nội"},
	}

	for _, q := range []string{"", "   "} {
		got := FilterHotels(hotels, q)
		assert.Equal(t, hotels, got)
	}
}

func TestFilterHotels_AliasExpansion(t *testing.T) {
	rex := &entity.Hotel{Name: "Rex", Address: "141 Nguyễn Huệ, Quận 1", Location: "Hồ Chí Minh"}
	caravelle := &entity.Hotel{Name: "Caravelle", Address: "19 Lam Sơn, Q1, TP.HCM", Location: "Sài Gòn"}
	metropole := &entity.Hotel{Name: "Metropole", Address: "15 Ngô Quyền", Location: "Hà Nội"}
	all := []*entity.Hotel{rex, caravelle, metropole}

	got := FilterHotels(all, "tphcm")
	assert.ElementsMatch(t, []*entity.Hotel{rex, caravelle}, got)

	got = FilterHotels(all, "HN")
	assert.Equal(t, []*entity.Hotel{metropole}, got)

	got = FilterHotels(all, "metro")
	assert.Equal(t, []*entity.Hotel{metropole}, got)
}

func TestFilterFlights_RouteAndOrder(t *testing.T) {
	day := time.Date(2026, 11, 20, 0, 0, 0, 0, saigon)
	late := newFlight("VN245", "Hà Nội (HAN)", "Hồ Chí Minh (SGN)", day.Add(18*time.Hour))
	early := newFlight("VN211", "Hà Nội (HAN)", "Hồ Chí Minh (SGN)", day.Add(6*time.Hour))
	other := newFlight("VN155", "Hà Nội (HAN)", "Đà Nẵng (DAD)", day.Add(7*time.Hour))
	nextDay := newFlight("VN213", "Hà Nội (HAN)", "Hồ Chí Minh (SGN)", day.Add(30*time.Hour))

	got, err := FilterFlights([]*entity.Flight{late, other, nextDay, early}, FlightCriteria{
		From: "Hà Nội (HAN)",
		To:   "tphcm",
		Date: "2026-11-20",
	}, saigon)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Flight{early, late}, got)

	got, err = FilterFlights([]*entity.Flight{late, other, nextDay, early}, FlightCriteria{
		From: "HAN",
		To:   "SGN",
	}, saigon)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].DepartAt.Before(got[i-1].DepartAt))
	}
}

func TestFilterFlights_DayUsesServiceTimeZone(t *testing.T) {
	// 23:30 UTC on the 19th is already the 20th in Asia/Ho_Chi_Minh
	f := newFlight("VN1", "Hà Nội (HAN)", "Đà Nẵng (DAD)", time.Date(2026, 11, 19, 23, 30, 0, 0, time.UTC))

	got, err := FilterFlights([]*entity.Flight{f}, FlightCriteria{From: "ha noi", To: "da nang", Date: "2026-11-20"}, saigon)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = FilterFlights([]*entity.Flight{f}, FlightCriteria{From: "ha noi", To: "da nang", Date: "2026-11-19"}, saigon)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterFlights_InvalidDate(t *testing.T) {
	_, err := FilterFlights(nil, FlightCriteria{From: "a", To: "b", Date: "20-11-2026"}, saigon)
	assert.Error(t, err)
}

func TestFilterTours(t *testing.T) {
	halong := &entity.Tour{Name: "Vịnh Hạ Long 3N2Đ", Location: "Quảng Ninh", Description: "Du thuyền"}
	sapa := &entity.Tour{Name: "Sa Pa", Location: "Lào Cai", Description: "Trekking ruộng bậc thang"}
	all := []*entity.Tour{halong, sapa}

	assert.Equal(t, all, FilterTours(all, ""))
	assert.Equal(t, []*entity.Tour{halong}, FilterTours(all, "ha long"))
	assert.Equal(t, []*entity.Tour{sapa}, FilterTours(all, "trekking"))
	assert.Empty(t, FilterTours(all, "phu quoc"))
}
