package sources

import (
	"time"

	"github.com/sirupsen/logrus"

	"pgfinder/server/internal/models"
)

// NewMagicBricks returns the MagicBricks adapter, one of the flat-oriented
// portals. Flat cards carry BHK and furnishing hints in their text.
func NewMagicBricks(logger *logrus.Logger, timeout time.Duration, maxListings int) *Portal {
	return newPortal(portalConfig{
		name:    "MagicBricks",
		baseURL: "https://www.magicbricks.com",
		citySlugs: map[string]string{
			"delhi":     "New-Delhi",
			"mumbai":    "Mumbai",
			"bangalore": "Bangalore",
			"pune":      "Pune",
			"hyderabad": "Hyderabad",
		},
		searchPath: func(slug string, t models.PropertyType) string {
			if t == models.TypePG || t == models.TypeHostel {
				return "pg-hostel-for-rent-in-" + slug
			}
			return "flats-for-rent-in-" + slug
		},
		cardSelectors: []string{
			".mb-srp__card",
			`[class*="property-card"]`,
			`[class*="listing-card"]`,
			".card-wrapper",
			"article",
		},
		titleSel:        `h2, h3, [class*="title"], [class*="name"]`,
		priceSel:        `[class*="price"], [class*="val"]`,
		locationSel:     `[class*="address"], [class*="location"]`,
		defaultType:     models.TypeFlat,
		defaultPrice:    10000,
		minPrice:        1000,
		maxPrice:        500000,
		minTitleLen:     3,
		fallbackImage:   "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=400&h=300&fit=crop",
		fillerAmenities: []string{"Parking", "Security", "Power Backup"},
		flatExtras:      true,
	}, logger, timeout, maxListings)
}
