package sources

import (
	"time"

	"github.com/sirupsen/logrus"

	"pgfinder/server/internal/models"
)

// New99Acres returns the 99acres adapter, the second flat-oriented portal.
func New99Acres(logger *logrus.Logger, timeout time.Duration, maxListings int) *Portal {
	return newPortal(portalConfig{
		name:    "99acres",
		baseURL: "https://www.99acres.com",
		citySlugs: map[string]string{
			"delhi":     "new-delhi",
			"mumbai":    "mumbai",
			"bangalore": "bangalore",
			"pune":      "pune",
			"hyderabad": "hyderabad",
		},
		searchPath: func(slug string, t models.PropertyType) string {
			if t == models.TypePG || t == models.TypeHostel {
				return "pg-for-rent-in-" + slug + "-ffid"
			}
			return "flats-for-rent-in-" + slug + "-ffid"
		},
		cardSelectors: []string{
			".srp__card",
			`[class*="tuple"]`,
			`[class*="property"]`,
			".projectCard",
			"article",
		},
		titleSel:        `h2, h3, [class*="title"], [class*="name"]`,
		priceSel:        `[class*="price"], [class*="val"]`,
		locationSel:     `[class*="address"], [class*="location"]`,
		defaultType:     models.TypeFlat,
		defaultPrice:    12000,
		minPrice:        1000,
		maxPrice:        500000,
		minTitleLen:     3,
		fallbackImage:   "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=400&h=300&fit=crop",
		fillerAmenities: []string{"Parking", "Security", "Lift"},
		flatExtras:      true,
	}, logger, timeout, maxListings)
}
