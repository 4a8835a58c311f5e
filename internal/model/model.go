package model

import (
	"fmt"
	"strings"
	"time"
)

// Post is a record fetched from the remote collection. Posts are never
// edited locally; a refetch replaces the whole slice.
type Post struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

type TaskStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// Page is a derived view over an already filtered collection.
type Page[T any] struct {
	Items       []T  `json:"items"`
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

var statusOrder = []StatusFilter{StatusAll, StatusActive, StatusCompleted}

func ParseStatusFilter(value string) (StatusFilter, error) {
	trimmed := StatusFilter(strings.TrimSpace(strings.ToLower(value)))
	if trimmed == "" {
		return StatusAll, nil
	}
	for _, status := range statusOrder {
		if status == trimmed {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown status filter %q", value)
}

// Next cycles all -> active -> completed -> all.
func (s StatusFilter) Next() StatusFilter {
	for i, status := range statusOrder {
		if status == s {
			return statusOrder[(i+1)%len(statusOrder)]
		}
	}
	return StatusAll
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
