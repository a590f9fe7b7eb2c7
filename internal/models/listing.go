package models

import "github.com/paulmach/orb"

// PropertyType enumerates the kinds of accommodation we aggregate.
type PropertyType string

const (
	TypePG     PropertyType = "pg"
	TypeHostel PropertyType = "hostel"
	TypeFlat   PropertyType = "flat"
	TypeAll    PropertyType = "all"
)

// Gender is the occupancy policy of a listing.
type Gender string

const (
	GenderGirls  Gender = "girls"
	GenderBoys   Gender = "boys"
	GenderCoed   Gender = "coed"
	GenderFamily Gender = "family"
)

// Listing is the canonical record every provider's output is mapped into.
type Listing struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Type           PropertyType `json:"type"`
	Gender         Gender       `json:"gender"`
	City           string       `json:"city"`
	Area           string       `json:"area"`
	Address        string       `json:"address"`
	Rent           int          `json:"rent"`
	Deposit        int          `json:"deposit"`
	FoodIncluded   bool         `json:"foodIncluded"`
	Amenities      []string     `json:"amenities"`
	NearbyColleges []string     `json:"nearbyColleges"`
	OwnerName      string       `json:"ownerName"`
	OwnerPhone     string       `json:"ownerPhone"`
	Images         []string     `json:"images"`
	Rating         float64      `json:"rating"`
	Reviews        int          `json:"reviews"`
	SourceURL      string       `json:"sourceUrl"`
	SourceName     string       `json:"sourceName"`
	Distance       string       `json:"distance,omitempty"`
	AvailableFrom  string       `json:"availableFrom,omitempty"`
	Occupancy      string       `json:"occupancy,omitempty"`
	BHK            string       `json:"bhk,omitempty"`
	Furnished      string       `json:"furnished,omitempty"`
	Coordinates    *orb.Point   `json:"coordinates,omitempty"`
	ScrapedAt      string       `json:"scrapedAt,omitempty"`
}

// DepositFor derives a security deposit from rent: two months for PG and
// hostel stays, three for flats.
func DepositFor(t PropertyType, rent int) int {
	if t == TypeFlat {
		return rent * 3
	}
	return rent * 2
}

// AggregationResult is the merged, provenance-tagged output of one
// aggregation call. IsRealData is the only reliable signal that the
// listings came from external providers; per-listing SourceName is not.
type AggregationResult struct {
	Listings   []Listing `json:"listings"`
	IsRealData bool      `json:"isRealData"`
	Sources    []string  `json:"sources"`
	Error      string    `json:"error,omitempty"`
}

// RentComparison summarises rents for one area of a listing collection.
type RentComparison struct {
	Area         string `json:"area"`
	AvgRent      int    `json:"avgRent"`
	MinRent      int    `json:"minRent"`
	MaxRent      int    `json:"maxRent"`
	ListingCount int    `json:"listingCount"`
}

// SearchFilters carries the query parameters of a listing search.
// Gender, Type and Furnished accept "all" as a wildcard.
type SearchFilters struct {
	City         string `form:"city"`
	Area         string `form:"area"`
	Gender       string `form:"gender"`
	Type         string `form:"type"`
	MinRent      int    `form:"minRent"`
	MaxRent      int    `form:"maxRent"`
	FoodIncluded *bool  `form:"food"`
	NearCollege  string `form:"college"`
	Furnished    string `form:"furnished"`
	SortBy       string `form:"sortBy"`
}
