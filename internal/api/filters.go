package api

import (
	"sort"
	"strconv"
	"strings"

	"pgfinder/server/internal/models"
)

// applyFilters narrows a listing collection down to the entries matching
// every set filter. Gender, type and furnished treat "all" as no filter.
func applyFilters(listings []models.Listing, f models.SearchFilters) []models.Listing {
	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if f.Gender != "" && f.Gender != "all" && string(l.Gender) != f.Gender {
			continue
		}
		if f.Type != "" && f.Type != "all" && string(l.Type) != f.Type {
			continue
		}
		if f.FoodIncluded != nil && l.FoodIncluded != *f.FoodIncluded {
			continue
		}
		if f.MinRent > 0 && l.Rent < f.MinRent {
			continue
		}
		if f.MaxRent > 0 && l.Rent > f.MaxRent {
			continue
		}
		if f.NearCollege != "" && !nearCollege(l.NearbyColleges, f.NearCollege) {
			continue
		}
		if f.Furnished != "" && f.Furnished != "all" && l.Furnished != f.Furnished {
			continue
		}
		out = append(out, l)
	}
	return out
}

func nearCollege(colleges []string, query string) bool {
	q := strings.ToLower(query)
	for _, c := range colleges {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

// sortListings orders listings by the requested key. Unknown keys leave the
// incoming order untouched; aggregation order is completion order and only
// becomes deterministic through an explicit sort here.
func sortListings(listings []models.Listing, sortBy string) {
	switch sortBy {
	case "price_low":
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Rent < listings[j].Rent })
	case "price_high":
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Rent > listings[j].Rent })
	case "rating":
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Rating > listings[j].Rating })
	case "distance":
		sort.SliceStable(listings, func(i, j int) bool {
			return parseDistance(listings[i].Distance) < parseDistance(listings[j].Distance)
		})
	}
}

// sortComparisons orders rent comparisons by average rent ascending, the
// order the compare view presents.
func sortComparisons(comparisons []models.RentComparison) {
	sort.SliceStable(comparisons, func(i, j int) bool {
		return comparisons[i].AvgRent < comparisons[j].AvgRent
	})
}

// parseDistance reads the leading decimal number out of a distance string
// like "1.4 km"; anything non-numeric counts as zero.
func parseDistance(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0
	}
	d, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return d
}
