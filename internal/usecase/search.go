package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"travel-booking/internal/data/entity"
)

const dateLayout = "2006-01-02"

// FlightCriteria is one leg of a route search. Date and ReturnDate are
// calendar days (YYYY-MM-DD) in the service time zone.
type FlightCriteria struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date,omitempty"`
	ReturnDate string `json:"return_date,omitempty"`
	RoundTrip  bool   `json:"round_trip"`
	Passengers int    `json:"passengers"`
}

// placeAliases maps a normalized query to the spellings it stands for.
var placeAliases = map[string][]string{
	"tphcm":   {"hồ chí minh", "tp.hcm"},
	"hcm":     {"hồ chí minh", "tp.hcm"},
	"sai gon": {"hồ chí minh", "tp.hcm"},
	"sg":      {"hồ chí minh", "tp.hcm"},
	"hn":      {"hà nội"},
	"dn":      {"đà nẵng"},
}

var placeCodePattern = regexp.MustCompile(`^(.*?)\s*\(([^()]*)\)\s*$`)

// NormalizeText lower-cases s, folds Vietnamese diacritics and collapses
// whitespace, so "  Hồ Chí  Minh" and "ho chi minh" compare equal.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("đ", "d", "Đ", "d").Replace(s)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.Join(strings.Fields(folded), " ")
}

// SplitPlace splits "Hà Nội (HAN)" into "Hà Nội" and "HAN". The code is
// empty when the place carries no parenthetical part.
func SplitPlace(s string) (name, code string) {
	s = strings.TrimSpace(s)
	m := placeCodePattern.FindStringSubmatch(s)
	if m == nil {
		return s, ""
	}
	return strings.TrimSpace(m[1]), strings.ToUpper(strings.TrimSpace(m[2]))
}

// expandQuery returns the normalized query followed by its alias targets.
func expandQuery(query string) []string {
	q := NormalizeText(query)
	terms := []string{q}
	for _, alias := range placeAliases[q] {
		terms = append(terms, NormalizeText(alias))
	}
	return terms
}

func containsAny(haystack string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

func placeMatches(query, candidate string) bool {
	qName, qCode := SplitPlace(query)
	cName, cCode := SplitPlace(candidate)

	if qCode != "" && cCode != "" {
		return qCode == cCode
	}
	// a bare airport code typed as the whole query
	if qCode == "" && cCode != "" && strings.EqualFold(qName, cCode) {
		return true
	}

	terms := expandQuery(qName)
	if terms[0] == "" {
		return true
	}
	return containsAny(NormalizeText(cName), terms)
}

// FilterFlights keeps flights on the requested route (and day, when given)
// and returns them sorted by departure.
func FilterFlights(all []*entity.Flight, c FlightCriteria, loc *time.Location) ([]*entity.Flight, error) {
	var day time.Time
	if c.Date != "" {
		d, err := time.ParseInLocation(dateLayout, c.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", c.Date, err)
		}
		day = d
	}

	result := make([]*entity.Flight, 0, len(all))
	for _, f := range all {
		if !placeMatches(c.From, f.From) || !placeMatches(c.To, f.To) {
			continue
		}
		if !day.IsZero() && !sameDay(f.DepartAt.In(loc), day) {
			continue
		}
		result = append(result, f)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DepartAt.Before(result[j].DepartAt)
	})
	return result, nil
}

// FilterHotels matches the query against name, address and location.
// An empty query returns all unchanged.
func FilterHotels(all []*entity.Hotel, query string) []*entity.Hotel {
	terms := expandQuery(query)
	if terms[0] == "" {
		return all
	}

	result := make([]*entity.Hotel, 0, len(all))
	for _, h := range all {
		haystack := NormalizeText(h.Name + " " + h.Address + " " + h.Location)
		if containsAny(haystack, terms) {
			result = append(result, h)
		}
	}
	return result
}

// FilterTours is a substring match over name, location and description.
func FilterTours(all []*entity.Tour, query string) []*entity.Tour {
	q := NormalizeText(query)
	if q == "" {
		return all
	}

	result := make([]*entity.Tour, 0, len(all))
	for _, t := range all {
		if strings.Contains(NormalizeText(t.Name), q) ||
			strings.Contains(NormalizeText(t.Location), q) ||
			strings.Contains(NormalizeText(t.Description), q) {
			result = append(result, t)
		}
	}
	return result
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
