package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pgfinder/server/internal/models"
)

func TestRentByArea(t *testing.T) {
	listings := []models.Listing{
		{ID: "a", Area: "Koramangala", Rent: 1000},
		{ID: "b", Area: "Koramangala", Rent: 3000},
		{ID: "c", Area: "HSR Layout", Rent: 12000},
	}

	comparisons := RentByArea(listings)
	assert.Len(t, comparisons, 2)

	byArea := make(map[string]models.RentComparison)
	for _, c := range comparisons {
		byArea[c.Area] = c
	}

	kor := byArea["Koramangala"]
	assert.Equal(t, 2000, kor.AvgRent)
	assert.Equal(t, 1000, kor.MinRent)
	assert.Equal(t, 3000, kor.MaxRent)
	assert.Equal(t, 2, kor.ListingCount)

	hsr := byArea["HSR Layout"]
	assert.Equal(t, 12000, hsr.AvgRent)
	assert.Equal(t, 1, hsr.ListingCount)
}

func TestRentByArea_RoundsAverageToNearest(t *testing.T) {
	listings := []models.Listing{
		{ID: "a", Area: "Baner", Rent: 1000},
		{ID: "b", Area: "Baner", Rent: 1001},
	}

	comparisons := RentByArea(listings)
	assert.Len(t, comparisons, 1)
	assert.Equal(t, 1001, comparisons[0].AvgRent)
}

func TestRentByArea_Empty(t *testing.T) {
	assert.Empty(t, RentByArea(nil))
}
