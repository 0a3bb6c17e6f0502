package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/gayathri-1911/travel-assistant/pkg/errors"
)

func TestService_ListToursFiltering(t *testing.T) {
	repo := newStubRepo(testTours(), testDestinations())
	svc := newServiceUnderTest(t, repo)

	maxPrice := 500
	tests := []struct {
		name    string
		filters *TourFilters
		uids    []string
	}{
		{"no filters", nil, []string{"rome_city_tour", "venice_gondola_experience", "tuscany_wine_tour"}},
		{"location substring", &TourFilters{Location: "venice"}, []string{"venice_gondola_experience"}},
		{"category case-insensitive", &TourFilters{Category: "cultural"}, []string{"rome_city_tour"}},
		{"max price inclusive", &TourFilters{MaxPrice: &maxPrice}, []string{"rome_city_tour", "venice_gondola_experience"}},
		{"combined", &TourFilters{Location: "italy", MaxPrice: &maxPrice}, []string{"rome_city_tour", "venice_gondola_experience"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tours, err := svc.ListTours(context.Background(), tc.filters)
			require.NoError(t, err)
			require.Equal(t, tc.uids, tourUIDs(tours))
		})
	}
}

func TestService_ListToursUsesCache(t *testing.T) {
	repo := newStubRepo(testTours(), testDestinations())
	svc := newServiceUnderTest(t, repo)

	_, err := svc.ListTours(context.Background(), nil)
	require.NoError(t, err)
	_, err = svc.ListTours(context.Background(), nil)
	require.NoError(t, err)

	require.Equal(t, 1, repo.tourCalls)
}

func TestService_ListToursCachePerFilterSet(t *testing.T) {
	repo := newStubRepo(testTours(), testDestinations())
	svc := newServiceUnderTest(t, repo)

	_, err := svc.ListTours(context.Background(), nil)
	require.NoError(t, err)
	_, err = svc.ListTours(context.Background(), &TourFilters{Location: "venice"})
	require.NoError(t, err)

	// Distinct filter sets map to distinct cache keys, so the repo is hit again.
	require.Equal(t, 2, repo.tourCalls)
}

func TestService_ListToursRepoError(t *testing.T) {
	repo := newStubRepo(nil, nil)
	repo.tourErr = errors.New("upstream down")
	svc := newServiceUnderTest(t, repo)

	_, err := svc.ListTours(context.Background(), nil)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "content_unavailable"))
}

func TestService_ListToursDegradesOnCacheError(t *testing.T) {
	repo := newStubRepo(testTours(), testDestinations())
	cache := &stubCache{getErr: errors.New("cache offline"), setErr: errors.New("cache offline")}
	svc := NewService(Config{TourCacheTTL: time.Minute}, repo, cache, testLogger())

	tours, err := svc.ListTours(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, tours, 3)
}

func TestService_GetTourByUID(t *testing.T) {
	repo := newStubRepo(testTours(), testDestinations())
	svc := newServiceUnderTest(t, repo)

	tour, err := svc.GetTourByUID(context.Background(), "venice_gondola_experience")
	require.NoError(t, err)
	require.Equal(t, "Venice Gondola Experience", tour.Title)

	_, err = svc.GetTourByUID(context.Background(), "atlantis_day_trip")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "not_found"))
}

func TestService_Search(t *testing.T) {
	repo := newStubRepo(testTours(), testDestinations())
	svc := newServiceUnderTest(t, repo)

	cc, err := svc.Search(context.Background(), "Venice")
	require.NoError(t, err)
	require.Equal(t, []string{"venice_gondola_experience"}, tourUIDs(cc.Tours))
	require.Empty(t, cc.Destinations)
	require.Equal(t, 1, cc.TotalResults)

	cc, err = svc.Search(context.Background(), "italy")
	require.NoError(t, err)
	require.Len(t, cc.Tours, 3)
	require.Len(t, cc.Destinations, 1)
	require.Equal(t, 4, cc.TotalResults)

	cc, err = svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	require.Zero(t, cc.TotalResults)
}

func TestService_CategoriesAndLocations(t *testing.T) {
	repo := newStubRepo(testTours(), testDestinations())
	svc := newServiceUnderTest(t, repo)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Culinary", "Cultural", "Romantic"}, categories)

	locations, err := svc.Locations(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Rome, Italy", "Tuscany, Italy", "Venice, Italy"}, locations)
}

func TestTourFiltersCacheKey(t *testing.T) {
	maxPrice := 400
	tests := []struct {
		filters *TourFilters
		key     string
	}{
		{nil, "tours:all"},
		{&TourFilters{}, "tours:all"},
		{&TourFilters{Location: "Venice"}, "tours:location=venice"},
		{&TourFilters{Location: "Rome", Category: "Cultural", MaxPrice: &maxPrice}, "tours:location=rome|category=cultural|max_price=400"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.key, tc.filters.cacheKey())
	}
}

func newServiceUnderTest(t *testing.T, repo *stubRepo) Service {
	t.Helper()
	cache := &stubCache{entries: make(map[string][]byte)}
	return NewService(Config{TourCacheTTL: time.Minute, DestinationCacheTTL: time.Minute}, repo, cache, testLogger())
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tourUIDs(tours []Tour) []string {
	uids := make([]string, 0, len(tours))
	for _, tour := range tours {
		uids = append(uids, tour.UID)
	}
	return uids
}

func testTours() []Tour {
	return []Tour{
		{
			UID:        "rome_city_tour",
			Title:      "Rome City Tour",
			Price:      "$500",
			Location:   "Rome, Italy",
			Category:   "Cultural",
			Highlights: []string{"Colosseum", "Vatican Museums"},
		},
		{
			UID:        "venice_gondola_experience",
			Title:      "Venice Gondola Experience",
			Price:      "$350",
			Location:   "Venice, Italy",
			Category:   "Romantic",
			Highlights: []string{"Grand Canal"},
		},
		{
			UID:      "tuscany_wine_tour",
			Title:    "Tuscany Wine Tour",
			Price:    "$680",
			Location: "Tuscany, Italy",
			Category: "Culinary",
		},
	}
}

func testDestinations() []Destination {
	return []Destination{
		{UID: "italy", Title: "Italy", Description: "Rich history, culture, and cuisine."},
		{UID: "france", Title: "France", Description: "Romance from Paris to Provence."},
	}
}

type stubRepo struct {
	tours        []Tour
	destinations []Destination
	tourErr      error
	destErr      error
	tourCalls    int
	destCalls    int
}

func newStubRepo(tours []Tour, destinations []Destination) *stubRepo {
	return &stubRepo{tours: tours, destinations: destinations}
}

func (r *stubRepo) ListTours(ctx context.Context) ([]Tour, error) {
	r.tourCalls++
	if r.tourErr != nil {
		return nil, r.tourErr
	}
	return r.tours, nil
}

func (r *stubRepo) ListDestinations(ctx context.Context) ([]Destination, error) {
	r.destCalls++
	if r.destErr != nil {
		return nil, r.destErr
	}
	return r.destinations, nil
}

type stubCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
}

func (c *stubCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	payload, ok := c.entries[key]
	return payload, ok, nil
}

func (c *stubCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = payload
	return nil
}
