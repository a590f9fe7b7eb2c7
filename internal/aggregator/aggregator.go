// Package aggregator fans a listing request out to every applicable source
// adapter, merges whatever came back and falls back to synthetic data when
// all providers failed or returned nothing.
package aggregator

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"pgfinder/server/internal/generator"
	"pgfinder/server/internal/models"
	"pgfinder/server/internal/sources"
)

// SampleSourceName tags the contributing-sources list of a synthetic result.
const SampleSourceName = "Sample Data"

const fallbackExplanation = "No listings found from any source. Showing sample data instead."

// Aggregator orchestrates the fallback cascade over two adapter families:
// room-oriented sources (PG/hostel) and flat-oriented sources.
type Aggregator struct {
	roomSources   []sources.Source
	flatSources   []sources.Source
	gen           *generator.Generator
	logger        *logrus.Logger
	fallbackCount int
}

func New(roomSources, flatSources []sources.Source, gen *generator.Generator, logger *logrus.Logger, fallbackCount int) *Aggregator {
	return &Aggregator{
		roomSources:   roomSources,
		flatSources:   flatSources,
		gen:           gen,
		logger:        logger,
		fallbackCount: fallbackCount,
	}
}

type fetchResult struct {
	source   string
	listings []models.Listing
}

// Aggregate queries every adapter applicable to the property type
// concurrently and waits for all of them; one slow or failing adapter never
// cancels its siblings. Merged listing order follows adapter completion
// order, so callers needing a stable order must sort. If the merge is empty
// the synthetic generator fills in and the result is flagged accordingly.
func (a *Aggregator) Aggregate(ctx context.Context, city string, propertyType models.PropertyType) models.AggregationResult {
	applicable := a.applicableSources(propertyType)

	a.logger.WithFields(logrus.Fields{
		"city":    city,
		"type":    propertyType,
		"sources": len(applicable),
	}).Info("Starting aggregation")

	results := make(chan fetchResult, len(applicable))
	var wg sync.WaitGroup
	for _, src := range applicable {
		wg.Add(1)
		go func(src sources.Source) {
			defer wg.Done()
			results <- fetchResult{source: src.Name(), listings: src.Fetch(ctx, city, propertyType)}
		}(src)
	}
	wg.Wait()
	close(results)

	var merged []models.Listing
	var contributed []string
	for res := range results {
		if len(res.listings) == 0 {
			continue
		}
		merged = append(merged, res.listings...)
		contributed = append(contributed, res.source)
	}

	if len(merged) > 0 {
		a.logger.WithFields(logrus.Fields{
			"city":    city,
			"count":   len(merged),
			"sources": contributed,
		}).Info("Aggregation succeeded with external data")
		return models.AggregationResult{
			Listings:   merged,
			IsRealData: true,
			Sources:    contributed,
		}
	}

	a.logger.WithField("city", city).Warn("All sources empty, falling back to synthetic listings")
	return models.AggregationResult{
		Listings:   a.gen.Generate(city, "", propertyType, a.fallbackCount),
		IsRealData: false,
		Sources:    []string{SampleSourceName},
		Error:      fallbackExplanation,
	}
}

// applicableSources selects adapter families by requested property type:
// room sources serve pg, hostel, all and unspecified requests; flat sources
// serve flat, all and unspecified. A request scoped to one family skips the
// other entirely.
func (a *Aggregator) applicableSources(propertyType models.PropertyType) []sources.Source {
	var applicable []sources.Source
	switch propertyType {
	case models.TypePG, models.TypeHostel:
		applicable = append(applicable, a.roomSources...)
	case models.TypeFlat:
		applicable = append(applicable, a.flatSources...)
	default:
		applicable = append(applicable, a.roomSources...)
		applicable = append(applicable, a.flatSources...)
	}
	return applicable
}
