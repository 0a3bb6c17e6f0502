package catalogrepo

import (
	"time"

	"github.com/gayathri-1911/travel-assistant/internal/domain/catalog"
)

func sampleTours() []catalog.Tour {
	return []catalog.Tour{
		{
			UID:          "rome_city_tour",
			Title:        "Rome City Tour",
			Description:  "Explore the eternal city with our expert guides. Visit the Colosseum, Roman Forum, and Vatican City with skip-the-line access.",
			Price:        "$500",
			Duration:     "3 Days",
			Location:     "Rome, Italy",
			Highlights:   []string{"Colosseum", "Vatican Museums", "Trevi Fountain", "Spanish Steps", "Roman Forum"},
			Category:     "Cultural",
			ImageURL:     "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=400",
			Rating:       4.8,
			ReviewsCount: 1247,
			CreatedAt:    mustParse("2024-01-15T10:00:00Z"),
			UpdatedAt:    mustParse("2024-12-01T15:30:00Z"),
		},
		{
			UID:          "venice_gondola_experience",
			Title:        "Venice Gondola Experience",
			Description:  "Romantic gondola rides through Venice's historic canals with authentic Italian serenades and traditional craftsmanship.",
			Price:        "$350",
			Duration:     "2 Days",
			Location:     "Venice, Italy",
			Highlights:   []string{"Grand Canal", "St. Mark's Square", "Doge's Palace", "Rialto Bridge", "Gondola Serenade"},
			Category:     "Romantic",
			ImageURL:     "https://images.unsplash.com/photo-1514890547357-a9ee288728e0?w=400",
			Rating:       4.9,
			ReviewsCount: 892,
			CreatedAt:    mustParse("2024-01-20T14:00:00Z"),
			UpdatedAt:    mustParse("2024-11-28T09:15:00Z"),
		},
		{
			UID:          "florence_art_walk",
			Title:        "Florence Art Walk",
			Description:  "Immerse yourself in Renaissance art at the Uffizi Gallery and explore Michelangelo's masterpieces with art historians.",
			Price:        "$420",
			Duration:     "2 Days",
			Location:     "Florence, Italy",
			Highlights:   []string{"Uffizi Gallery", "Ponte Vecchio", "Duomo", "Michelangelo's David", "Boboli Gardens"},
			Category:     "Art & Culture",
			ImageURL:     "https://images.unsplash.com/photo-1583586002792-12f84815bf98?w=400",
			Rating:       4.7,
			ReviewsCount: 1056,
			CreatedAt:    mustParse("2024-02-01T11:30:00Z"),
			UpdatedAt:    mustParse("2024-12-02T16:45:00Z"),
		},
		{
			UID:          "tuscany_wine_tour",
			Title:        "Tuscany Wine Tour",
			Description:  "Sample world-class wines in the rolling hills of Tuscany with visits to historic vineyards and cooking classes.",
			Price:        "$680",
			Duration:     "4 Days",
			Location:     "Tuscany, Italy",
			Highlights:   []string{"Chianti Vineyards", "Medieval Towns", "Wine Tastings", "Cooking Classes", "Sunset Views"},
			Category:     "Culinary",
			ImageURL:     "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400",
			Rating:       4.9,
			ReviewsCount: 634,
			CreatedAt:    mustParse("2024-02-10T08:00:00Z"),
			UpdatedAt:    mustParse("2024-11-30T12:20:00Z"),
		},
		{
			UID:          "amalfi_coast_adventure",
			Title:        "Amalfi Coast Adventure",
			Description:  "Discover the stunning coastline of Southern Italy with boat trips, hiking trails, and authentic local cuisine.",
			Price:        "$550",
			Duration:     "3 Days",
			Location:     "Amalfi Coast, Italy",
			Highlights:   []string{"Positano", "Amalfi Town", "Ravello Gardens", "Coastal Hiking", "Limoncello Tasting"},
			Category:     "Adventure",
			ImageURL:     "https://images.unsplash.com/photo-1519112232436-9923c6ba3d26?w=400",
			Rating:       4.8,
			ReviewsCount: 721,
			CreatedAt:    mustParse("2024-03-01T13:15:00Z"),
			UpdatedAt:    mustParse("2024-12-01T10:30:00Z"),
		},
	}
}

func sampleDestinations() []catalog.Destination {
	return []catalog.Destination{
		{
			UID:             "italy",
			Title:           "Italy",
			Description:     "Experience the rich history, culture, and cuisine of Italy. From ancient Rome to Renaissance Florence, Italy offers unforgettable journeys.",
			PopularTours:    []string{"rome_city_tour", "venice_gondola_experience", "florence_art_walk", "tuscany_wine_tour"},
			ImageURL:        "https://images.unsplash.com/photo-1515542622106-78bda8ba0e5b?w=400",
			BestTimeToVisit: "April-June, September-October",
			CreatedAt:       mustParse("2024-01-01T00:00:00Z"),
		},
		{
			UID:             "france",
			Title:           "France",
			Description:     "Discover the romance and elegance of France, from Paris landmarks to Provence lavender fields.",
			PopularTours:    []string{},
			ImageURL:        "https://images.unsplash.com/photo-1502602898536-47ad22581b52?w=400",
			BestTimeToVisit: "May-July, September-October",
			CreatedAt:       mustParse("2024-01-01T00:00:00Z"),
		},
	}
}

func mustParse(value string) time.Time {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return ts
}
