// Package generator produces plausible canonical listings from static city
// reference data, with no network access. It backs the fallback cascade and
// the explicit demo mode.
package generator

import (
	"fmt"
	"math/rand"
	"strconv"

	"pgfinder/server/config"
	"pgfinder/server/internal/models"
)

var propertyNames = []string{
	"Sunrise PG", "Student Haven", "Campus View PG", "Green Valley Hostel",
	"Elite Stay", "Home Away PG", "Scholar's Den", "City Light PG",
	"Royal Residency", "Dream Stay", "Comfort Zone PG", "Study Nest",
	"Urban Living PG", "Prime Location Hostel", "Safe Haven PG",
}

var ownerNames = []string{
	"Sharma Ji", "Patel Bhai", "Mrs. Gupta", "Mr. Singh", "Reddy Sir",
	"Mrs. Iyer", "Khan Sahab", "Mrs. Desai", "Mr. Verma", "Mrs. Nair",
}

// Generated listings carry a real provider name so sample mode looks like a
// normal aggregation; AggregationResult.IsRealData is the trust signal.
var sourceNames = []string{"NoBroker", "MagicBricks", "99acres", "Housing.com"}

var roomAmenities = []string{
	"WiFi", "AC", "Geyser", "Washing Machine", "TV", "Fridge", "Power Backup",
	"Parking", "Security", "CCTV", "Lift", "Gym", "Study Room", "Kitchen Access",
}

var flatAmenities = []string{
	"WiFi", "AC", "Modular Kitchen", "Power Backup", "Parking", "Security",
	"CCTV", "Lift", "Gym", "Swimming Pool", "Club House", "Balcony",
}

var roomImages = []string{
	"https://images.unsplash.com/photo-1555854877-bab0e564b8d5?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400&h=300&fit=crop",
}

var flatImages = []string{
	"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=400&h=300&fit=crop",
}

var occupancies = []string{"single", "double", "triple", "shared"}

var bhkLabels = []struct {
	label    string
	baseRent int
}{
	{"Studio", 8000},
	{"1 BHK", 12000},
	{"2 BHK", 18000},
	{"3 BHK", 25000},
}

var furnishings = []string{"fully", "semi", "unfurnished"}

// Generator builds synthetic listings. All random choices go through the
// injected rand.Rand so a seeded generator is fully deterministic.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator backed by the given source of randomness.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded returns a deterministic Generator for the given seed.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// Generate produces exactly count listings for the city. An unrecognised
// city falls back to the default reference data; a non-empty area restricts
// the area pool to that single value; propertyType "all" or empty draws
// uniformly from all three types. Generate never fails.
func (g *Generator) Generate(city, area string, propertyType models.PropertyType, count int) []models.Listing {
	cityData := config.GetCityOrDefault(city)

	areas := cityData.Areas
	if area != "" {
		areas = []string{area}
	}

	types := []models.PropertyType{models.TypePG, models.TypeHostel, models.TypeFlat}
	if propertyType != "" && propertyType != models.TypeAll {
		types = []models.PropertyType{propertyType}
	}

	displayCity := config.DisplayCity(city)
	listings := make([]models.Listing, 0, count)
	for i := 0; i < count; i++ {
		t := types[g.rng.Intn(len(types))]
		if t == models.TypeFlat {
			listings = append(listings, g.flat(displayCity, areas))
		} else {
			listings = append(listings, g.room(displayCity, areas, t, cityData.Colleges))
		}
	}
	return listings
}

// room generates a PG or hostel listing.
func (g *Generator) room(city string, areas []string, t models.PropertyType, colleges []string) models.Listing {
	area := areas[g.rng.Intn(len(areas))]

	var rent int
	if t == models.TypeHostel {
		rent = 3000 + g.rng.Intn(6001)
	} else {
		rent = 6000 + g.rng.Intn(12001)
	}

	collegeCount := g.rng.Intn(3) + 1
	if collegeCount > len(colleges) {
		collegeCount = len(colleges)
	}

	listing := g.base(city, area, t, rent)
	listing.Name = propertyNames[g.rng.Intn(len(propertyNames))] + " - " + area
	listing.Gender = []models.Gender{models.GenderGirls, models.GenderBoys, models.GenderCoed}[g.rng.Intn(3)]
	listing.FoodIncluded = g.rng.Float64() > 0.4
	listing.Amenities = g.pickAmenities(roomAmenities, 3, 8)
	listing.NearbyColleges = append([]string{}, colleges[:collegeCount]...)
	listing.Images = g.pickImages(roomImages)
	listing.Occupancy = occupancies[g.rng.Intn(len(occupancies))]
	return listing
}

// flat generates a whole-flat listing with BHK-dependent rent.
func (g *Generator) flat(city string, areas []string) models.Listing {
	area := areas[g.rng.Intn(len(areas))]
	bhk := bhkLabels[g.rng.Intn(len(bhkLabels))]
	rent := bhk.baseRent + g.rng.Intn(8001)

	listing := g.base(city, area, models.TypeFlat, rent)
	listing.Name = bhk.label + " Apartment - " + area
	listing.Gender = models.GenderFamily
	listing.Amenities = g.pickAmenities(flatAmenities, 4, 9)
	listing.NearbyColleges = []string{}
	listing.Images = g.pickImages(flatImages)
	listing.BHK = bhk.label
	listing.Furnished = furnishings[g.rng.Intn(len(furnishings))]
	return listing
}

// base fills the fields every synthetic listing shares.
func (g *Generator) base(city, area string, t models.PropertyType, rent int) models.Listing {
	// IDs come from the injected rng rather than uuid so a seeded
	// generator reproduces byte-identical output.
	return models.Listing{
		ID:            "gen-" + strconv.FormatInt(g.rng.Int63(), 36),
		Type:          t,
		City:          city,
		Area:          area,
		Address:       fmt.Sprintf("%d, %s, %s", g.rng.Intn(200)+1, area, city),
		Rent:          rent,
		Deposit:       models.DepositFor(t, rent),
		OwnerName:     ownerNames[g.rng.Intn(len(ownerNames))],
		OwnerPhone:    fmt.Sprintf("98%08d", g.rng.Intn(90000000)+10000000),
		Rating:        float64(int((3.5+g.rng.Float64()*1.5)*10)) / 10,
		Reviews:       g.rng.Intn(50) + 5,
		SourceURL:     "https://example.com/listing",
		SourceName:    sourceNames[g.rng.Intn(len(sourceNames))],
		Distance:      fmt.Sprintf("%.1f km", g.rng.Float64()*3+0.5),
		AvailableFrom: "Immediate",
	}
}

// pickAmenities draws a random subset sized between min and max from a pool.
func (g *Generator) pickAmenities(pool []string, min, max int) []string {
	count := min + g.rng.Intn(max-min+1)
	if count > len(pool) {
		count = len(pool)
	}
	shuffled := append([]string{}, pool...)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}

// pickImages draws one or two images from a pool.
func (g *Generator) pickImages(pool []string) []string {
	images := []string{pool[g.rng.Intn(len(pool))]}
	if g.rng.Intn(2) == 1 {
		images = append(images, pool[g.rng.Intn(len(pool))])
	}
	return images
}
