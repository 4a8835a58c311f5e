// Package query holds the search and pagination helpers used by every
// presentation layer. All functions are pure and never modify their input.
package query

import (
	"strings"

	"github.com/Joseda-hg/lazyboard/internal/model"
)

const DefaultPerPage = 12

// SearchRecords returns the posts whose title or body contains query,
// ignoring case. A blank query returns records itself, so callers must
// treat the result as read-only.
func SearchRecords(records []model.Post, query string) []model.Post {
	if strings.TrimSpace(query) == "" {
		return records
	}

	needle := strings.ToLower(query)
	result := make([]model.Post, 0, len(records))
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Title), needle) ||
			strings.Contains(strings.ToLower(record.Body), needle) {
			result = append(result, record)
		}
	}
	return result
}

// Paginate slices items into the 1-indexed page of size perPage. A page past
// the end yields no items; page itself is reported back unchanged.
// perPage must be positive.
func Paginate[T any](items []T, page, perPage int) model.Page[T] {
	result := model.Page[T]{
		Items:       []T{},
		CurrentPage: page,
		TotalItems:  len(items),
		HasPrevPage: page > 1,
	}
	if perPage <= 0 {
		return result
	}

	result.TotalPages = (len(items) + perPage - 1) / perPage
	result.HasNextPage = page < result.TotalPages
	if page < 1 || page > result.TotalPages {
		return result
	}

	start := (page - 1) * perPage
	end := min(start+perPage, len(items))
	result.Items = items[start:end]
	return result
}

// PageWindow lists the page numbers a pager should show: the first and last
// pages plus the neighbours of current. A zero marks an elided gap.
func PageWindow(current, total int) []int {
	if total <= 0 {
		return nil
	}

	window := make([]int, 0, 7)
	last := 0
	for page := 1; page <= total; page++ {
		if page != 1 && page != total && abs(page-current) > 1 {
			continue
		}
		if last != 0 && page-last > 1 {
			window = append(window, 0)
		}
		window = append(window, page)
		last = page
	}
	return window
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
