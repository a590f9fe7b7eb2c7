// Package insights reduces listing collections to derived statistics.
package insights

import "pgfinder/server/internal/models"

// RentByArea groups listings by exact area string and summarises rents per
// group. Output order is unspecified; callers sort by whatever key they need.
func RentByArea(listings []models.Listing) []models.RentComparison {
	rentsByArea := make(map[string][]int)
	for _, l := range listings {
		rentsByArea[l.Area] = append(rentsByArea[l.Area], l.Rent)
	}

	comparisons := make([]models.RentComparison, 0, len(rentsByArea))
	for area, rents := range rentsByArea {
		total := 0
		min, max := rents[0], rents[0]
		for _, r := range rents {
			total += r
			if r < min {
				min = r
			}
			if r > max {
				max = r
			}
		}
		comparisons = append(comparisons, models.RentComparison{
			Area:         area,
			AvgRent:      (total + len(rents)/2) / len(rents),
			MinRent:      min,
			MaxRent:      max,
			ListingCount: len(rents),
		})
	}
	return comparisons
}
