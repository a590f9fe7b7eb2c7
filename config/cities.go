package config

import (
	"regexp"
	"strings"
)

// City holds the static reference data for one supported city: the
// neighbourhoods listings are grouped under and the colleges students
// search against.
type City struct {
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Areas    []string `json:"areas"`
	Colleges []string `json:"colleges"`
}

// SupportedCities is the full set of cities the aggregator knows about.
// The first entry doubles as the fallback when an unknown city is requested.
var SupportedCities = []City{
	{
		Name:     "Delhi",
		Slug:     "delhi",
		Areas:    []string{"North Campus", "South Campus", "Dwarka", "Rohini", "Laxmi Nagar", "Karol Bagh", "Rajouri Garden", "Pitampura", "Janakpuri", "Kalkaji"},
		Colleges: []string{"Delhi University", "JNU", "Jamia Millia Islamia", "IP University", "DTU", "NSIT", "Lady Shri Ram College", "St. Stephens College", "Hindu College", "Miranda House"},
	},
	{
		Name:     "Mumbai",
		Slug:     "mumbai",
		Areas:    []string{"Andheri", "Powai", "Dadar", "Churchgate", "Bandra", "Vile Parle", "Goregaon", "Malad", "Thane", "Navi Mumbai"},
		Colleges: []string{"IIT Bombay", "Mumbai University", "TISS", "NMIMS", "St. Xaviers College", "Jai Hind College", "KC College", "Mithibai College", "VJTI", "SPIT"},
	},
	{
		Name:     "Bangalore",
		Slug:     "bangalore",
		Areas:    []string{"Koramangala", "HSR Layout", "BTM Layout", "Indiranagar", "Whitefield", "Electronic City", "Marathahalli", "JP Nagar", "Jayanagar", "Malleshwaram"},
		Colleges: []string{"IISc", "Christ University", "Bangalore University", "RV College", "PES University", "BMS College", "Mount Carmel College", "St. Josephs College", "Jain University", "NMIT"},
	},
	{
		Name:     "Pune",
		Slug:     "pune",
		Areas:    []string{"Kothrud", "Shivajinagar", "Viman Nagar", "Hinjewadi", "Wakad", "Baner", "Aundh", "Hadapsar", "Koregaon Park", "Camp"},
		Colleges: []string{"COEP", "Fergusson College", "Symbiosis", "Pune University", "MIT Pune", "PICT", "VIT Pune", "SCMHRD", "Bharati Vidyapeeth", "Deccan College"},
	},
	{
		Name:     "Hyderabad",
		Slug:     "hyderabad",
		Areas:    []string{"Ameerpet", "Kukatpally", "Madhapur", "Hitech City", "Gachibowli", "Secunderabad", "Begumpet", "Dilsukhnagar", "Chaitanyapuri", "Kondapur"},
		Colleges: []string{"University of Hyderabad", "IIIT Hyderabad", "Osmania University", "BITS Hyderabad", "CBIT", "VNR VJIET", "Chaitanya Bharathi", "JNTU Hyderabad", "Gitam University", "St. Marys College"},
	},
}

// GetCityNames returns the display names of all supported cities.
func GetCityNames() []string {
	names := make([]string, len(SupportedCities))
	for i, city := range SupportedCities {
		names[i] = city.Name
	}
	return names
}

// GetCityBySlug returns the city whose slug matches the normalized name,
// or nil if the city is not supported.
func GetCityBySlug(name string) *City {
	slug := NormalizeCity(name)
	for i := range SupportedCities {
		if SupportedCities[i].Slug == slug {
			return &SupportedCities[i]
		}
	}
	return nil
}

// GetCityOrDefault resolves a city by slug, falling back to the first
// supported city when the name is unrecognised.
func GetCityOrDefault(name string) *City {
	if city := GetCityBySlug(name); city != nil {
		return city
	}
	return &SupportedCities[0]
}

var multiSpace = regexp.MustCompile(`\s+`)

// NormalizeCity lowercases a city name and collapses whitespace into
// hyphens so it can be used as a lookup slug.
func NormalizeCity(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "'", "")
	s = multiSpace.ReplaceAllString(s, "-")
	return s
}

// DisplayCity capitalises each word of a city name for output.
func DisplayCity(name string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
