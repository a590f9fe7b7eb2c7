// Package scheduler keeps the listing cache warm by aggregating every
// supported city on startup and on a fixed interval afterwards.
package scheduler

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"pgfinder/server/config"
	"pgfinder/server/internal/aggregator"
	"pgfinder/server/internal/cache"
)

// Scheduler manages periodic cache warm-up runs.
type Scheduler struct {
	aggregator *aggregator.Aggregator
	store      *cache.Store
	logger     *logrus.Logger
	interval   time.Duration
	cities     []string
	stopChan   chan struct{}
	wg         sync.WaitGroup
	jobMutex   sync.Mutex // Ensures sequential warm-up runs
}

func New(agg *aggregator.Aggregator, store *cache.Store, logger *logrus.Logger, interval time.Duration) *Scheduler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Scheduler{
		aggregator: agg,
		store:      store,
		logger:     logger,
		interval:   interval,
		cities:     config.GetCityNames(),
		stopChan:   make(chan struct{}),
	}
}

// Start begins the warm-up loop.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Startup warm-up runs detached so Start returns immediately.
	go s.warmUpAll()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.warmUpAll()
		}
	}
}

// warmUpAll aggregates each supported city sequentially and seeds the cache
// with any real data that came back. Synthetic fallbacks are not cached
// here; sample listings only enter the cache through a request that
// actually served them.
func (s *Scheduler) warmUpAll() {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	s.logger.Info("Starting cache warm-up run")
	for _, city := range s.cities {
		log := s.logger.WithField("city", city)

		result := s.aggregator.Aggregate(context.Background(), city, "")
		if !result.IsRealData {
			log.Info("Warm-up found no external data, skipping cache seed")
			continue
		}

		s.store.PutAll(result.Listings)
		log.WithFields(logrus.Fields{
			"count":   len(result.Listings),
			"sources": result.Sources,
		}).Info("Warm-up seeded cache")
	}
	s.logger.WithField("cached", s.store.Len()).Info("Cache warm-up run completed")
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}
