package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"pgfinder/server/internal/aggregator"
	"pgfinder/server/internal/cache"
	"pgfinder/server/internal/generator"
	"pgfinder/server/internal/models"
	"pgfinder/server/internal/sources"
)

type stubSource struct {
	listings []models.Listing
}

func (s *stubSource) Name() string { return "Stub" }

func (s *stubSource) Fetch(_ context.Context, city string, _ models.PropertyType) []models.Listing {
	out := make([]models.Listing, len(s.listings))
	copy(out, s.listings)
	for i := range out {
		out[i].ID = city + "-" + out[i].ID
	}
	return out
}

func newTestScheduler(src sources.Source, store *cache.Store) *Scheduler {
	logger := logrus.New()
	var room []sources.Source
	if src != nil {
		room = []sources.Source{src}
	}
	agg := aggregator.New(room, nil, generator.NewSeeded(1), logger, 5)
	return New(agg, store, logger, time.Hour)
}

func TestWarmUpSeedsCacheFromRealData(t *testing.T) {
	store := cache.NewStore()
	src := &stubSource{listings: []models.Listing{{ID: "x", Rent: 8000}}}

	newTestScheduler(src, store).warmUpAll()

	// One listing per supported city, keyed by distinct IDs.
	assert.Equal(t, 5, store.Len())
	_, ok := store.Get("Delhi-x")
	assert.True(t, ok)
}

func TestWarmUpSkipsSyntheticFallback(t *testing.T) {
	store := cache.NewStore()

	newTestScheduler(&stubSource{}, store).warmUpAll()

	assert.Equal(t, 0, store.Len(), "fallback data must not pre-seed the cache")
}

func TestStartStop(t *testing.T) {
	store := cache.NewStore()
	s := newTestScheduler(&stubSource{}, store)

	s.Start()
	s.Stop()
}
