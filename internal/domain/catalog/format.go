package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	maxFormattedTours      = 5
	maxFormattedHighlights = 3
)

// FormatContext renders a content context as a compact text block suitable for
// prompt augmentation. Empty sections are omitted entirely.
func FormatContext(cc ContentContext) string {
	var parts []string

	if len(cc.Tours) > 0 {
		parts = append(parts, "AVAILABLE TOURS:")
		tours := cc.Tours
		if len(tours) > maxFormattedTours {
			tours = tours[:maxFormattedTours]
		}
		for _, tour := range tours {
			highlights := tour.Highlights
			if len(highlights) > maxFormattedHighlights {
				highlights = highlights[:maxFormattedHighlights]
			}
			parts = append(parts, fmt.Sprintf("\n• **%s** - %s (%s)\n  Location: %s\n  Category: %s\n  Highlights: %s\n  Rating: %s/5",
				tour.Title,
				tour.Price,
				tour.Duration,
				tour.Location,
				tour.Category,
				strings.Join(highlights, ", "),
				formatRating(tour.Rating),
			))
		}
	}

	if len(cc.Destinations) > 0 {
		parts = append(parts, "\nAVAILABLE DESTINATIONS:")
		for _, dest := range cc.Destinations {
			best := dest.BestTimeToVisit
			if best == "" {
				best = "Year-round"
			}
			parts = append(parts, fmt.Sprintf("\n• **%s**: %s\n  Best time to visit: %s",
				dest.Title,
				dest.Description,
				best,
			))
		}
	}

	return strings.Join(parts, "\n")
}

func formatRating(rating float64) string {
	if rating <= 0 {
		return "N/A"
	}
	return strconv.FormatFloat(rating, 'g', -1, 64)
}
