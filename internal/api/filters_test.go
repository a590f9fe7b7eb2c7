package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pgfinder/server/internal/models"
)

func boolPtr(v bool) *bool { return &v }

func fixtureListings() []models.Listing {
	return []models.Listing{
		{ID: "a", Type: models.TypePG, Gender: models.GenderGirls, Rent: 6000, Rating: 4.5, FoodIncluded: true, Distance: "0.5 km", NearbyColleges: []string{"Delhi University"}},
		{ID: "b", Type: models.TypeHostel, Gender: models.GenderBoys, Rent: 4000, Rating: 3.8, Distance: "2.1 km", NearbyColleges: []string{"IIT Bombay"}},
		{ID: "c", Type: models.TypeFlat, Gender: models.GenderFamily, Rent: 18000, Rating: 4.1, Furnished: "semi", Distance: "1.4 km", NearbyColleges: []string{}},
		{ID: "d", Type: models.TypePG, Gender: models.GenderCoed, Rent: 9000, Rating: 4.9, FoodIncluded: true, Distance: "not listed", NearbyColleges: []string{"Christ University", "Jain University"}},
	}
}

func filteredIDs(listings []models.Listing) []string {
	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	return ids
}

func TestApplyFilters(t *testing.T) {
	tests := []struct {
		name     string
		filters  models.SearchFilters
		expected []string
	}{
		{
			name:     "No filters keeps everything",
			filters:  models.SearchFilters{},
			expected: []string{"a", "b", "c", "d"},
		},
		{
			name:     "Gender filter",
			filters:  models.SearchFilters{Gender: "girls"},
			expected: []string{"a"},
		},
		{
			name:     "Gender all is a wildcard",
			filters:  models.SearchFilters{Gender: "all"},
			expected: []string{"a", "b", "c", "d"},
		},
		{
			name:     "Type filter",
			filters:  models.SearchFilters{Type: "pg"},
			expected: []string{"a", "d"},
		},
		{
			name:     "Rent range is inclusive",
			filters:  models.SearchFilters{MinRent: 4000, MaxRent: 9000},
			expected: []string{"a", "b", "d"},
		},
		{
			name:     "Food included",
			filters:  models.SearchFilters{FoodIncluded: boolPtr(true)},
			expected: []string{"a", "d"},
		},
		{
			name:     "Food excluded",
			filters:  models.SearchFilters{FoodIncluded: boolPtr(false)},
			expected: []string{"b", "c"},
		},
		{
			name:     "College substring match is case-insensitive",
			filters:  models.SearchFilters{NearCollege: "christ"},
			expected: []string{"d"},
		},
		{
			name:     "Furnished filter",
			filters:  models.SearchFilters{Furnished: "semi"},
			expected: []string{"c"},
		},
		{
			name:     "Combined filters",
			filters:  models.SearchFilters{Type: "pg", MinRent: 7000},
			expected: []string{"d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyFilters(fixtureListings(), tt.filters)
			assert.Equal(t, tt.expected, filteredIDs(got))
		})
	}
}

func TestSortListings(t *testing.T) {
	tests := []struct {
		name     string
		sortBy   string
		expected []string
	}{
		{
			name:     "Price low to high",
			sortBy:   "price_low",
			expected: []string{"b", "a", "d", "c"},
		},
		{
			name:     "Price high to low",
			sortBy:   "price_high",
			expected: []string{"c", "d", "a", "b"},
		},
		{
			name:     "Rating descending",
			sortBy:   "rating",
			expected: []string{"d", "a", "c", "b"},
		},
		{
			name:     "Distance ascending with unparseable last",
			sortBy:   "distance",
			expected: []string{"d", "a", "c", "b"},
		},
		{
			name:     "Unknown key keeps input order",
			sortBy:   "newest",
			expected: []string{"a", "b", "c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listings := fixtureListings()
			sortListings(listings, tt.sortBy)
			assert.Equal(t, tt.expected, filteredIDs(listings))
		})
	}
}

func TestSortComparisons(t *testing.T) {
	comparisons := []models.RentComparison{
		{Area: "Powai", AvgRent: 20000},
		{Area: "Dadar", AvgRent: 15000},
		{Area: "Thane", AvgRent: 9000},
	}

	sortComparisons(comparisons)

	assert.Equal(t, "Thane", comparisons[0].Area)
	assert.Equal(t, "Dadar", comparisons[1].Area)
	assert.Equal(t, "Powai", comparisons[2].Area)
}

func TestParseDistance(t *testing.T) {
	assert.InDelta(t, 1.4, parseDistance("1.4 km"), 0.001)
	assert.InDelta(t, 2.0, parseDistance("2km"), 0.001)
	assert.Equal(t, 0.0, parseDistance("not listed"))
	assert.Equal(t, 0.0, parseDistance(""))
}
