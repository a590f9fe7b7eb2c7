package sources

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pgfinder/server/config"
	"pgfinder/server/internal/heuristics"
	"pgfinder/server/internal/models"
)

// portalConfig describes how to scrape one property portal: where to find
// listing cards and what defaults apply when the markup is incomplete.
type portalConfig struct {
	name      string
	baseURL   string
	citySlugs map[string]string

	// searchPath builds the path for a city slug and property type.
	searchPath func(slug string, t models.PropertyType) string

	// cardSelectors are tried in priority order; the first selector that
	// matches at least one parseable card wins, later selectors are ignored.
	cardSelectors []string
	titleSel      string
	priceSel      string
	locationSel   string

	defaultType     models.PropertyType
	defaultPrice    int
	minPrice        int
	maxPrice        int
	minTitleLen     int
	requireDigits   bool
	fallbackImage   string
	fillerAmenities []string
	detectFood      bool
	flatExtras      bool
}

// Portal scrapes search-result pages of one property portal. All portals
// share the same extraction pipeline; only portalConfig differs.
type Portal struct {
	cfg         portalConfig
	client      *http.Client
	logger      *logrus.Logger
	maxListings int
}

func newPortal(cfg portalConfig, logger *logrus.Logger, timeout time.Duration, maxListings int) *Portal {
	return &Portal{
		cfg:         cfg,
		client:      newHTTPClient(timeout),
		logger:      logger,
		maxListings: maxListings,
	}
}

func (p *Portal) Name() string {
	return p.cfg.name
}

// Fetch downloads one search-result page and extracts up to maxListings
// canonical listings from it. Any failure yields an empty slice.
func (p *Portal) Fetch(ctx context.Context, city string, propertyType models.PropertyType) []models.Listing {
	slug, ok := p.cfg.citySlugs[config.NormalizeCity(city)]
	if !ok {
		slug = p.cfg.citySlugs["delhi"]
	}

	url := p.cfg.baseURL + "/" + p.cfg.searchPath(slug, propertyType)
	log := p.logger.WithFields(logrus.Fields{"source": p.cfg.name, "url": url})
	log.Info("Scraping portal search page")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.WithError(err).Error("Failed to build request")
		return nil
	}
	setBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		log.WithError(err).Warn("Portal request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithField("status", resp.StatusCode).Warn("Portal returned non-2xx status")
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.WithError(err).Warn("Failed to parse portal HTML")
		return nil
	}

	listings := p.parseDocument(doc, city)
	log.WithField("count", len(listings)).Info("Portal scrape finished")
	return listings
}

// parseDocument runs the selector-fallback chain over a parsed page. It is
// split from Fetch so fixture documents can be parsed without a network.
func (p *Portal) parseDocument(doc *goquery.Document, city string) []models.Listing {
	for _, selector := range p.cfg.cardSelectors {
		var listings []models.Listing

		doc.Find(selector).EachWithBreak(func(_ int, card *goquery.Selection) bool {
			if len(listings) >= p.maxListings {
				return false
			}
			if listing, ok := p.parseCard(card, city); ok {
				listings = append(listings, listing)
			}
			return true
		})

		if len(listings) > 0 {
			return listings
		}
	}
	return nil
}

var bhkPattern = regexp.MustCompile(`(?i)(\d+)\s*bhk`)

// parseCard extracts one candidate listing from a card element. Candidates
// with missing or out-of-bound titles and prices are discarded rather than
// corrected.
func (p *Portal) parseCard(card *goquery.Selection, city string) (models.Listing, bool) {
	text := card.Text()

	name := strings.TrimSpace(card.Find(p.cfg.titleSel).First().Text())
	priceText := strings.TrimSpace(card.Find(p.cfg.priceSel).First().Text())
	location := strings.TrimSpace(card.Find(p.cfg.locationSel).First().Text())

	image := card.Find("img").First()
	imageURL, ok := image.Attr("src")
	if !ok || imageURL == "" {
		imageURL, _ = image.Attr("data-src")
	}
	detailURL, _ := card.Find("a").First().Attr("href")

	if name == "" || len(name) < p.cfg.minTitleLen || len(name) > 200 {
		return models.Listing{}, false
	}
	if p.cfg.requireDigits && !strings.ContainsAny(priceText, "0123456789") {
		return models.Listing{}, false
	}

	rent := heuristics.ExtractPrice(priceText, p.cfg.defaultPrice)
	if rent < p.cfg.minPrice || rent > p.cfg.maxPrice {
		return models.Listing{}, false
	}

	if len(name) > 100 {
		name = name[:100]
	}

	typeText := name + " " + text
	propertyType := heuristics.InferType(typeText, p.cfg.defaultType)

	area := heuristics.InferArea(location)
	if area == "" {
		area = "Central"
	}
	address := location
	if address == "" {
		address = config.DisplayCity(city)
	}
	if imageURL == "" {
		imageURL = p.cfg.fallbackImage
	}
	if detailURL != "" && !strings.HasPrefix(detailURL, "http") {
		detailURL = p.cfg.baseURL + detailURL
	}

	listing := models.Listing{
		ID:             uuid.NewString(),
		Name:           name,
		Type:           propertyType,
		Gender:         heuristics.InferGender(typeText),
		City:           config.DisplayCity(city),
		Area:           area,
		Address:        address,
		Rent:           rent,
		Deposit:        models.DepositFor(propertyType, rent),
		Amenities:      heuristics.ExtractAmenities(text, p.cfg.fillerAmenities),
		NearbyColleges: []string{},
		OwnerName:      "Property Owner",
		OwnerPhone:     syntheticPhone(),
		Images:         []string{imageURL},
		Rating:         syntheticRating(),
		Reviews:        syntheticReviews(),
		SourceURL:      detailURL,
		SourceName:     p.cfg.name,
		Distance:       syntheticDistance(),
		AvailableFrom:  "Immediate",
		ScrapedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	lowerText := strings.ToLower(text)
	if p.cfg.detectFood {
		listing.FoodIncluded = strings.Contains(lowerText, "food") || strings.Contains(lowerText, "meal")
	}
	if p.cfg.flatExtras {
		if m := bhkPattern.FindStringSubmatch(text); m != nil {
			listing.BHK = m[1] + " BHK"
		}
		switch {
		case strings.Contains(lowerText, "unfurnished"):
			listing.Furnished = "unfurnished"
		case strings.Contains(lowerText, "semi"):
			listing.Furnished = "semi"
		case strings.Contains(lowerText, "furnished"):
			listing.Furnished = "fully"
		}
	}

	return listing, true
}
