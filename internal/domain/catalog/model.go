package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Tour is a bookable tour entry from the travel catalog.
type Tour struct {
	UID          string    `json:"uid"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	Duration     string    `json:"duration"`
	Location     string    `json:"location"`
	Highlights   []string  `json:"highlights"`
	Category     string    `json:"category"`
	ImageURL     string    `json:"image_url,omitempty"`
	Rating       float64   `json:"rating"`
	ReviewsCount int       `json:"reviews_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Destination is a country or region grouping related tours.
type Destination struct {
	UID             string    `json:"uid"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PopularTours    []string  `json:"popular_tours"`
	ImageURL        string    `json:"image_url,omitempty"`
	BestTimeToVisit string    `json:"best_time_to_visit"`
	CreatedAt       time.Time `json:"created_at"`
}

// TourFilters narrows a tour listing. All provided fields must match (logical AND).
type TourFilters struct {
	// Location matches as a case-insensitive substring.
	Location string
	// Category matches case-insensitively but exactly.
	Category string
	// MaxPrice is an inclusive upper bound on the numeric part of the price.
	MaxPrice *int
}

// IsZero reports whether no filter field is set.
func (f *TourFilters) IsZero() bool {
	return f == nil || (f.Location == "" && f.Category == "" && f.MaxPrice == nil)
}

// cacheKey renders the canonical cache key for this filter set.
func (f *TourFilters) cacheKey() string {
	if f.IsZero() {
		return "tours:all"
	}
	parts := make([]string, 0, 3)
	if f.Location != "" {
		parts = append(parts, "location="+strings.ToLower(f.Location))
	}
	if f.Category != "" {
		parts = append(parts, "category="+strings.ToLower(f.Category))
	}
	if f.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("max_price=%d", *f.MaxPrice))
	}
	return "tours:" + strings.Join(parts, "|")
}

// ContentContext holds the catalog records relevant to one query.
type ContentContext struct {
	Tours        []Tour        `json:"tours"`
	Destinations []Destination `json:"destinations"`
	TotalResults int           `json:"total_results"`
}
