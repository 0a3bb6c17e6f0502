package catalog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatContext_Empty(t *testing.T) {
	require.Empty(t, FormatContext(ContentContext{}))
}

func TestFormatContext_ToursOnly(t *testing.T) {
	cc := ContentContext{
		Tours: []Tour{
			{
				Title:      "Rome City Tour",
				Price:      "$500",
				Duration:   "3 Days",
				Location:   "Rome, Italy",
				Category:   "Cultural",
				Highlights: []string{"Colosseum", "Vatican Museums", "Trevi Fountain", "Spanish Steps"},
				Rating:     4.8,
			},
		},
	}

	got := FormatContext(cc)
	require.True(t, strings.HasPrefix(got, "AVAILABLE TOURS:"))
	require.NotContains(t, got, "AVAILABLE DESTINATIONS:")
	require.Contains(t, got, "**Rome City Tour** - $500 (3 Days)")
	require.Contains(t, got, "Location: Rome, Italy")
	require.Contains(t, got, "Rating: 4.8/5")
	// Only the first three highlights are rendered.
	require.Contains(t, got, "Highlights: Colosseum, Vatican Museums, Trevi Fountain")
	require.NotContains(t, got, "Spanish Steps")
}

func TestFormatContext_CapsTourCount(t *testing.T) {
	cc := ContentContext{}
	for i := 0; i < 7; i++ {
		cc.Tours = append(cc.Tours, Tour{Title: fmt.Sprintf("Tour %d", i)})
	}

	got := FormatContext(cc)
	require.Contains(t, got, "Tour 4")
	require.NotContains(t, got, "Tour 5")
}

func TestFormatContext_Destinations(t *testing.T) {
	cc := ContentContext{
		Destinations: []Destination{
			{Title: "Italy", Description: "Rich history and cuisine.", BestTimeToVisit: "April-June"},
			{Title: "France", Description: "Romance and elegance."},
		},
	}

	got := FormatContext(cc)
	require.True(t, strings.HasPrefix(got, "\nAVAILABLE DESTINATIONS:"))
	require.Contains(t, got, "**Italy**: Rich history and cuisine.\n  Best time to visit: April-June")
	require.Contains(t, got, "**France**: Romance and elegance.\n  Best time to visit: Year-round")
}

func TestFormatContext_MissingRating(t *testing.T) {
	got := FormatContext(ContentContext{Tours: []Tour{{Title: "Mystery Tour"}}})
	require.Contains(t, got, "Rating: N/A/5")
}
