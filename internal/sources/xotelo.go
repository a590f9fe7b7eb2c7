package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"pgfinder/server/config"
	"pgfinder/server/internal/models"
)

const xoteloBaseURL = "https://data.xotelo.com/api/list"

// Prices come back in US dollars per night; rent is rupees per month.
const (
	usdToINR     = 83
	daysPerMonth = 30
)

// cityLocationKeys maps supported cities to the provider's TripAdvisor
// location identifiers. An unmapped city means the provider has no data.
var cityLocationKeys = map[string]string{
	"delhi":     "g304551",
	"new-delhi": "g304551",
	"mumbai":    "g304554",
	"bangalore": "g297628",
	"bengaluru": "g297628",
	"pune":      "g297654",
	"hyderabad": "g297586",
}

type xoteloListing struct {
	Name              string   `json:"name"`
	Key               string   `json:"key"`
	AccommodationType string   `json:"accommodation_type"`
	URL               string   `json:"url"`
	ReviewSummary     struct {
		Rating float64 `json:"rating"`
		Count  int     `json:"count"`
	} `json:"review_summary"`
	PriceRanges *struct {
		Maximum float64 `json:"maximum"`
		Minimum float64 `json:"minimum"`
	} `json:"price_ranges"`
	Geo struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"geo"`
	Image               string   `json:"image"`
	Mentions            []string `json:"mentions"`
	MerchandisingLabels []string `json:"merchandising_labels"`
}

type xoteloResponse struct {
	Error  *string `json:"error"`
	Result *struct {
		TotalCount int             `json:"total_count"`
		Limit      int             `json:"limit"`
		Offset     int             `json:"offset"`
		List       []xoteloListing `json:"list"`
	} `json:"result"`
	Timestamp int64 `json:"timestamp"`
}

// Xotelo is the live metasearch adapter. Unlike the portals it consumes a
// structured JSON API, so no selector heuristics are involved; the work is
// unit conversion and field inference from mention strings.
type Xotelo struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
	limit   int
}

func NewXotelo(logger *logrus.Logger, timeout time.Duration, limit int) *Xotelo {
	return &Xotelo{
		baseURL: xoteloBaseURL,
		client:  newHTTPClient(timeout),
		logger:  logger,
		limit:   limit,
	}
}

func (x *Xotelo) Name() string {
	return "TripAdvisor"
}

// Fetch queries one page of the metasearch API for the city. Entries without
// a usable minimum price are dropped before transformation.
func (x *Xotelo) Fetch(ctx context.Context, city string, _ models.PropertyType) []models.Listing {
	log := x.logger.WithFields(logrus.Fields{"source": x.Name(), "city": city})

	locationKey, ok := cityLocationKeys[config.NormalizeCity(city)]
	if !ok {
		log.Info("City not mapped for metasearch provider")
		return nil
	}

	url := fmt.Sprintf("%s?location_key=%s&offset=0&limit=%d&sort=best_value", x.baseURL, locationKey, x.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.WithError(err).Error("Failed to build request")
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := x.client.Do(req)
	if err != nil {
		log.WithError(err).Warn("Metasearch request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Warn("Metasearch returned non-OK status")
		return nil
	}

	var payload xoteloResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Failed to decode metasearch response")
		return nil
	}
	if payload.Error != nil || payload.Result == nil {
		log.WithField("api_error", payload.Error).Warn("Metasearch returned an error payload")
		return nil
	}

	var listings []models.Listing
	for _, item := range payload.Result.List {
		if item.PriceRanges == nil || item.PriceRanges.Minimum <= 0 {
			continue
		}
		listings = append(listings, x.transform(item, city))
	}

	log.WithField("count", len(listings)).Info("Metasearch fetch finished")
	return listings
}

var (
	oyoPrefix   = regexp.MustCompile(`(?i)OYO \d+`)
	nonKeyChars = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

func (x *Xotelo) transform(item xoteloListing, city string) models.Listing {
	nightlyINR := int(item.PriceRanges.Minimum*usdToINR + 0.5)
	rent := nightlyINR * daysPerMonth

	propertyType := models.TypePG
	if strings.Contains(strings.ToLower(item.Name), "hostel") ||
		strings.Contains(strings.ToLower(item.AccommodationType), "hostel") {
		propertyType = models.TypeHostel
	}

	area := xoteloArea(item.Name, item.Mentions)
	if area == "" {
		area = "Central"
	}

	image := item.Image
	if image == "" {
		image = "https://images.unsplash.com/photo-1555854877-bab0e564b8d5?w=400&h=300&fit=crop"
	}

	coords := orb.Point{item.Geo.Longitude, item.Geo.Latitude}

	return models.Listing{
		ID:             "real-" + nonKeyChars.ReplaceAllString(item.Key, "-"),
		Name:           cleanHotelName(item.Name),
		Type:           propertyType,
		Gender:         xoteloGender(item.Name),
		City:           config.DisplayCity(city),
		Area:           area,
		Address:        area + ", " + config.DisplayCity(city),
		Rent:           rent,
		Deposit:        models.DepositFor(propertyType, rent),
		FoodIncluded:   hasFoodLabel(item.MerchandisingLabels),
		Amenities:      xoteloAmenities(item.Mentions, item.MerchandisingLabels),
		NearbyColleges: []string{},
		OwnerName:      "Property Manager",
		OwnerPhone:     syntheticPhone(),
		Images:         []string{image},
		Rating:         item.ReviewSummary.Rating,
		Reviews:        item.ReviewSummary.Count,
		SourceURL:      item.URL,
		SourceName:     x.Name(),
		Coordinates:    &coords,
		ScrapedAt:      time.Now().UTC().Format(time.RFC3339),
	}
}

// xoteloGender only sees hotel-style names, which rarely carry the "family"
// markers the portals use, so the family bucket is not produced here.
func xoteloGender(name string) models.Gender {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "girls"), strings.Contains(lower, "ladies"), strings.Contains(lower, "women"):
		return models.GenderGirls
	case strings.Contains(lower, "boys"), strings.Contains(lower, "men only"), strings.Contains(lower, "gents"):
		return models.GenderBoys
	default:
		return models.GenderCoed
	}
}

// areaKeywords are well-known neighbourhood names that show up inside hotel
// names across the supported cities.
var areaKeywords = []string{
	"koramangala", "indiranagar", "whitefield", "btm", "hsr",
	"electronic city", "marathahalli", "andheri", "bandra", "powai", "worli",
	"connaught", "lajpat", "nehru place", "saket", "gurgaon", "noida",
	"aerocity", "dwarka", "rohini", "pitampura", "kothrud", "hinjewadi",
	"baner", "kharadi", "viman nagar", "hitech city", "madhapur", "gachibowli",
	"jubilee hills", "banjara hills",
}

func xoteloArea(name string, mentions []string) string {
	lower := strings.ToLower(name)
	for _, area := range areaKeywords {
		if strings.Contains(lower, area) {
			return titleCase(area)
		}
	}

	mentionsStr := strings.Join(mentions, ", ")
	switch {
	case strings.Contains(mentionsStr, "Centrally Located"):
		return "Central"
	case strings.Contains(mentionsStr, "Airport"):
		return "Airport Area"
	case strings.Contains(mentionsStr, "Residential"):
		return "Residential Area"
	}
	return ""
}

func xoteloAmenities(mentions, labels []string) []string {
	amenities := []string{"WiFi"}
	combined := strings.ToLower(strings.Join(mentions, " ") + " " + strings.Join(labels, " "))

	checks := []struct {
		keywords []string
		tag      string
	}{
		{[]string{"modern"}, "AC"},
		{[]string{"pool", "swimming"}, "Swimming Pool"},
		{[]string{"breakfast", "all inclusive"}, "Meals Included"},
		{[]string{"gym", "fitness"}, "Gym"},
		{[]string{"parking"}, "Parking"},
		{[]string{"business"}, "Business Center"},
		{[]string{"spa"}, "Spa"},
		{[]string{"view"}, "City View"},
	}
	for _, check := range checks {
		for _, kw := range check.keywords {
			if strings.Contains(combined, kw) {
				amenities = append(amenities, check.tag)
				break
			}
		}
	}

	amenities = append(amenities, "24/7 Security", "Power Backup")

	seen := make(map[string]struct{}, len(amenities))
	out := amenities[:0]
	for _, a := range amenities {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

func hasFoodLabel(labels []string) bool {
	for _, l := range labels {
		lower := strings.ToLower(l)
		if strings.Contains(lower, "breakfast") || strings.Contains(lower, "all inclusive") {
			return true
		}
	}
	return false
}

func cleanHotelName(name string) string {
	name = oyoPrefix.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(name), " ")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
