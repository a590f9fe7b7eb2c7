package aggregator

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"pgfinder/server/internal/generator"
	"pgfinder/server/internal/models"
	"pgfinder/server/internal/sources"
)

// stubSource returns a fixed listing set regardless of city or type.
type stubSource struct {
	name     string
	listings []models.Listing
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(context.Context, string, models.PropertyType) []models.Listing {
	return s.listings
}

func stubListings(source string, count int) []models.Listing {
	listings := make([]models.Listing, count)
	for i := range listings {
		listings[i] = models.Listing{
			ID:         source + "-" + string(rune('a'+i)),
			Name:       "Listing from " + source,
			Type:       models.TypePG,
			Rent:       8000,
			SourceName: source,
		}
	}
	return listings
}

func newTestAggregator(room, flat []sources.Source, fallbackCount int) *Aggregator {
	logger := logrus.New()
	return New(room, flat, generator.NewSeeded(1), logger, fallbackCount)
}

func TestAggregate_MergesContributingSources(t *testing.T) {
	room := []sources.Source{
		&stubSource{name: "A", listings: stubListings("A", 2)},
		&stubSource{name: "B"},
	}
	flat := []sources.Source{
		&stubSource{name: "C", listings: stubListings("C", 1)},
	}

	result := newTestAggregator(room, flat, 50).Aggregate(context.Background(), "delhi", models.TypeAll)

	assert.True(t, result.IsRealData)
	assert.Len(t, result.Listings, 3)
	assert.ElementsMatch(t, []string{"A", "C"}, result.Sources,
		"empty sources must not be listed as contributors")
	assert.Empty(t, result.Error)
}

func TestAggregate_FallsBackWhenAllSourcesEmpty(t *testing.T) {
	room := []sources.Source{&stubSource{name: "A"}, &stubSource{name: "B"}}
	flat := []sources.Source{&stubSource{name: "C"}}

	result := newTestAggregator(room, flat, 50).Aggregate(context.Background(), "delhi", models.TypeAll)

	assert.False(t, result.IsRealData)
	assert.Len(t, result.Listings, 50)
	assert.Equal(t, []string{SampleSourceName}, result.Sources)
	assert.NotEmpty(t, result.Error)
}

func TestAggregate_FlatRequestSkipsRoomSources(t *testing.T) {
	room := []sources.Source{&stubSource{name: "A", listings: stubListings("A", 5)}}
	flat := []sources.Source{&stubSource{name: "C"}}

	result := newTestAggregator(room, flat, 10).Aggregate(context.Background(), "delhi", models.TypeFlat)

	assert.False(t, result.IsRealData, "room data must not serve a flat request")
	assert.Len(t, result.Listings, 10)
	for _, l := range result.Listings {
		assert.Equal(t, models.TypeFlat, l.Type)
	}
}

func TestAggregate_RoomRequestSkipsFlatSources(t *testing.T) {
	room := []sources.Source{&stubSource{name: "A", listings: stubListings("A", 2)}}
	flat := []sources.Source{&stubSource{name: "C", listings: stubListings("C", 4)}}

	result := newTestAggregator(room, flat, 10).Aggregate(context.Background(), "delhi", models.TypePG)

	assert.True(t, result.IsRealData)
	assert.Len(t, result.Listings, 2)
	assert.Equal(t, []string{"A"}, result.Sources)
}

func TestAggregate_UnspecifiedTypeQueriesBothFamilies(t *testing.T) {
	room := []sources.Source{&stubSource{name: "A", listings: stubListings("A", 1)}}
	flat := []sources.Source{&stubSource{name: "C", listings: stubListings("C", 1)}}

	result := newTestAggregator(room, flat, 10).Aggregate(context.Background(), "delhi", "")

	assert.Len(t, result.Listings, 2)
	assert.ElementsMatch(t, []string{"A", "C"}, result.Sources)
}
