package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ParsePagination reads page and per_page from a query string. Missing,
// malformed or non-positive values fall back to page 1 and DefaultPerPage;
// per_page is capped at MaxPerPage.
func ParsePagination(query url.Values) (page, perPage int) {
	page = positiveInt(query.Get("page"), 1)
	perPage = min(positiveInt(query.Get("per_page"), DefaultPerPage), MaxPerPage)
	return page, perPage
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// CalculateTotalPages rounds up; zero items or a bad page size give zero pages.
func CalculateTotalPages(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	pages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}

func CalculateOffset(page, perPage int) int {
	return max(page-1, 0) * perPage
}
