package sources

import (
	"time"

	"github.com/sirupsen/logrus"

	"pgfinder/server/internal/models"
)

// NewNoBroker returns the NoBroker adapter. NoBroker is the PG-oriented
// portal: cards that cannot be classified default to PG, and food
// availability is read from the card text.
func NewNoBroker(logger *logrus.Logger, timeout time.Duration, maxListings int) *Portal {
	return newPortal(portalConfig{
		name:    "NoBroker",
		baseURL: "https://www.nobroker.in",
		citySlugs: map[string]string{
			"delhi":     "new-delhi-delhi",
			"mumbai":    "mumbai_mumbai",
			"bangalore": "bangalore_bangalore",
			"pune":      "pune-pune",
			"hyderabad": "hyderabad-hyderabad",
		},
		searchPath: func(slug string, t models.PropertyType) string {
			if t == models.TypeFlat {
				return "flats-for-rent-in-" + slug
			}
			return "pg-in-" + slug
		},
		cardSelectors: []string{
			`[class*="card"]`,
			`[class*="property"]`,
			`[class*="listing"]`,
			"article",
			".nb__1flxi",
			"[data-test-id]",
		},
		titleSel:        `h2, h3, [class*="title"], [class*="name"]`,
		priceSel:        `[class*="price"], [class*="rent"], [class*="amount"]`,
		locationSel:     `[class*="location"], [class*="address"], [class*="area"]`,
		defaultType:     models.TypePG,
		defaultPrice:    8000,
		minPrice:        1000,
		maxPrice:        100000,
		minTitleLen:     5,
		requireDigits:   true,
		fallbackImage:   "https://images.unsplash.com/photo-1555854877-bab0e564b8d5?w=400&h=300&fit=crop",
		fillerAmenities: []string{"WiFi", "Power Backup", "Security"},
		detectFood:      true,
	}, logger, timeout, maxListings)
}
