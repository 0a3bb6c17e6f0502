package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/gayathri-1911/travel-assistant/pkg/errors"
)

const destinationsCacheKey = "destinations:all"

// Service exposes the travel catalog to the rest of the application.
type Service interface {
	ListTours(ctx context.Context, filters *TourFilters) ([]Tour, error)
	GetTourByUID(ctx context.Context, uid string) (Tour, error)
	ListDestinations(ctx context.Context) ([]Destination, error)
	Search(ctx context.Context, query string) (ContentContext, error)
	Categories(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) ([]string, error)
}

// Config holds the cache TTL knobs for the catalog domain.
type Config struct {
	TourCacheTTL        time.Duration
	DestinationCacheTTL time.Duration
}

type service struct {
	cfg    Config
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService wires up the catalog domain.
func NewService(cfg Config, repo Repository, cache Cache, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		cache:  cache,
		logger: logger.With("component", "catalog.service"),
	}
}

func (s *service) ListTours(ctx context.Context, filters *TourFilters) ([]Tour, error) {
	key := filters.cacheKey()
	if cached, ok := s.cachedTours(ctx, key); ok {
		return cached, nil
	}

	all, err := s.repo.ListTours(ctx)
	if err != nil {
		return nil, apperrors.Wrap("content_unavailable", "tour listing failed", err)
	}

	tours := applyFilters(all, filters)
	s.storeCache(ctx, key, tours, s.cfg.TourCacheTTL)
	return tours, nil
}

func (s *service) GetTourByUID(ctx context.Context, uid string) (Tour, error) {
	tours, err := s.ListTours(ctx, nil)
	if err != nil {
		return Tour{}, err
	}
	for _, tour := range tours {
		if tour.UID == uid {
			return tour, nil
		}
	}
	return Tour{}, apperrors.Wrap("not_found", "tour not found", nil)
}

func (s *service) ListDestinations(ctx context.Context) ([]Destination, error) {
	if payload, ok, err := s.cache.Get(ctx, destinationsCacheKey); err != nil {
		s.logger.Warn("destination cache lookup failed", "error", err)
	} else if ok {
		var destinations []Destination
		if err := json.Unmarshal(payload, &destinations); err == nil {
			return destinations, nil
		}
		s.logger.Warn("destination cache payload malformed, recomputing")
	}

	destinations, err := s.repo.ListDestinations(ctx)
	if err != nil {
		return nil, apperrors.Wrap("content_unavailable", "destination listing failed", err)
	}
	if payload, err := json.Marshal(destinations); err == nil {
		if err := s.cache.Set(ctx, destinationsCacheKey, payload, s.cfg.DestinationCacheTTL); err != nil {
			s.logger.Warn("destination cache write failed", "error", err)
		}
	}
	return destinations, nil
}

func (s *service) Search(ctx context.Context, query string) (ContentContext, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	tours, err := s.ListTours(ctx, nil)
	if err != nil {
		return ContentContext{}, err
	}
	destinations, err := s.ListDestinations(ctx)
	if err != nil {
		return ContentContext{}, err
	}

	matchedTours := make([]Tour, 0)
	for _, tour := range tours {
		if matchesTour(tour, needle) {
			matchedTours = append(matchedTours, tour)
		}
	}
	matchedDestinations := make([]Destination, 0)
	for _, dest := range destinations {
		if matchesDestination(dest, needle) {
			matchedDestinations = append(matchedDestinations, dest)
		}
	}

	return ContentContext{
		Tours:        matchedTours,
		Destinations: matchedDestinations,
		TotalResults: len(matchedTours) + len(matchedDestinations),
	}, nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	tours, err := s.ListTours(ctx, nil)
	if err != nil {
		return nil, err
	}
	return distinct(tours, func(t Tour) string { return t.Category }), nil
}

func (s *service) Locations(ctx context.Context) ([]string, error) {
	tours, err := s.ListTours(ctx, nil)
	if err != nil {
		return nil, err
	}
	return distinct(tours, func(t Tour) string { return t.Location }), nil
}

func (s *service) cachedTours(ctx context.Context, key string) ([]Tour, bool) {
	payload, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("tour cache lookup failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var tours []Tour
	if err := json.Unmarshal(payload, &tours); err != nil {
		s.logger.Warn("tour cache payload malformed, recomputing", "key", key)
		return nil, false
	}
	return tours, true
}

func (s *service) storeCache(ctx context.Context, key string, tours []Tour, ttl time.Duration) {
	payload, err := json.Marshal(tours)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, ttl); err != nil {
		s.logger.Warn("tour cache write failed", "key", key, "error", err)
	}
}

func applyFilters(tours []Tour, filters *TourFilters) []Tour {
	if filters.IsZero() {
		return tours
	}
	out := make([]Tour, 0, len(tours))
	for _, tour := range tours {
		if filters.Location != "" && !strings.Contains(strings.ToLower(tour.Location), strings.ToLower(filters.Location)) {
			continue
		}
		if filters.Category != "" && !strings.EqualFold(tour.Category, filters.Category) {
			continue
		}
		if filters.MaxPrice != nil {
			price, ok := parsePrice(tour.Price)
			if !ok || price > *filters.MaxPrice {
				continue
			}
		}
		out = append(out, tour)
	}
	return out
}

// parsePrice extracts the integer amount from a currency-formatted string like "$500".
func parsePrice(price string) (int, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(price), "$"))
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return value, true
}

func matchesTour(tour Tour, needle string) bool {
	if needle == "" {
		return false
	}
	if strings.Contains(strings.ToLower(tour.Title), needle) ||
		strings.Contains(strings.ToLower(tour.Description), needle) ||
		strings.Contains(strings.ToLower(tour.Location), needle) {
		return true
	}
	for _, highlight := range tour.Highlights {
		if strings.Contains(strings.ToLower(highlight), needle) {
			return true
		}
	}
	return false
}

func matchesDestination(dest Destination, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(dest.Title), needle) ||
		strings.Contains(strings.ToLower(dest.Description), needle)
}

func distinct(tours []Tour, pick func(Tour) string) []string {
	seen := make(map[string]struct{}, len(tours))
	out := make([]string, 0, len(tours))
	for _, tour := range tours {
		value := pick(tour)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}
