package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pgfinder/server/internal/models"
)

func TestInferGender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected models.Gender
	}{
		{
			name:     "Girls keyword",
			input:    "Sunrise Girls PG near North Campus",
			expected: models.GenderGirls,
		},
		{
			name:     "Women matches before the men substring",
			input:    "PG for Women in Koramangala",
			expected: models.GenderGirls,
		},
		{
			name:     "Boys keyword",
			input:    "Gents hostel with mess",
			expected: models.GenderBoys,
		},
		{
			name:     "Girls wins over family",
			input:    "Girls Hostel for Family",
			expected: models.GenderGirls,
		},
		{
			name:     "Men inside apartment does not imply boys",
			input:    "Spacious Apartment near basement parking",
			expected: models.GenderCoed,
		},
		{
			name:     "BHK implies family",
			input:    "Spacious 2 BHK in Baner",
			expected: models.GenderFamily,
		},
		{
			name:     "No keyword defaults to coed",
			input:    "Co-living space near metro",
			expected: models.GenderCoed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferGender(tt.input))
		})
	}
}

func TestInferType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback models.PropertyType
		expected models.PropertyType
	}{
		{
			name:     "Hostel keyword",
			input:    "Zostel Hostel Koramangala",
			fallback: models.TypePG,
			expected: models.TypeHostel,
		},
		{
			name:     "PG keyword",
			input:    "Sharma PG for students",
			fallback: models.TypeFlat,
			expected: models.TypePG,
		},
		{
			name:     "Paying guest spelled out",
			input:    "paying guest accommodation",
			fallback: models.TypeFlat,
			expected: models.TypePG,
		},
		{
			name:     "Hostel wins over PG",
			input:    "PG style hostel",
			fallback: models.TypeFlat,
			expected: models.TypeHostel,
		},
		{
			name:     "Neither keyword uses fallback",
			input:    "2 BHK Apartment in Wakad",
			fallback: models.TypeFlat,
			expected: models.TypeFlat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferType(tt.input, tt.fallback))
		})
	}
}

func TestExtractAmenities(t *testing.T) {
	filler := []string{"Power Backup", "Security"}

	t.Run("Three or more matches skip filler", func(t *testing.T) {
		got := ExtractAmenities("wifi and parking and gym on site", filler)
		assert.Equal(t, []string{"WiFi", "Parking", "Gym"}, got)
	})

	t.Run("Weak match is padded with filler", func(t *testing.T) {
		got := ExtractAmenities("free wifi", filler)
		assert.Equal(t, []string{"WiFi", "Power Backup", "Security"}, got)
	})

	t.Run("Filler overlap is deduplicated", func(t *testing.T) {
		got := ExtractAmenities("24x7 security guard", filler)
		assert.Equal(t, []string{"Security", "Power Backup"}, got)
	})

	t.Run("No match yields filler only", func(t *testing.T) {
		got := ExtractAmenities("spacious rooms", filler)
		assert.Equal(t, filler, got)
	})
}

func TestInferArea(t *testing.T) {
	assert.Equal(t, "Koramangala", InferArea("Koramangala, Bangalore"))
	assert.Equal(t, "HSR Layout", InferArea("  HSR Layout , Bangalore, Karnataka"))
	assert.Equal(t, "", InferArea("Bangalore"))
	assert.Equal(t, "", InferArea(""))
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback int
		expected int
	}{
		{
			name:     "Rupee symbol and commas",
			input:    "₹1,20,000 per month",
			fallback: 8000,
			expected: 120000,
		},
		{
			name:     "Plain digits",
			input:    "12000/month",
			fallback: 8000,
			expected: 12000,
		},
		{
			name:     "Lakh multiplier",
			input:    "12 Lakh",
			fallback: 8000,
			expected: 1200000,
		},
		{
			name:     "Lac spelling",
			input:    "₹1 lac deposit",
			fallback: 8000,
			expected: 100000,
		},
		{
			name:     "Crore multiplier",
			input:    "2 Cr",
			fallback: 8000,
			expected: 20000000,
		},
		{
			name:     "No digits uses fallback",
			input:    "Contact owner",
			fallback: 8000,
			expected: 8000,
		},
		{
			name:     "Empty string uses fallback",
			input:    "",
			fallback: 10000,
			expected: 10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPrice(tt.input, tt.fallback))
		})
	}
}
