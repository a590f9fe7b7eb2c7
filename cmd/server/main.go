package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"pgfinder/server/config"
	"pgfinder/server/internal/aggregator"
	"pgfinder/server/internal/api"
	"pgfinder/server/internal/cache"
	"pgfinder/server/internal/generator"
	"pgfinder/server/internal/scheduler"
	"pgfinder/server/internal/sources"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	timeout := time.Duration(cfg.Scraping.RequestTimeout) * time.Second

	roomSources := []sources.Source{
		sources.NewXotelo(logger, timeout, cfg.Scraping.APILimit),
		sources.NewNoBroker(logger, timeout, cfg.Scraping.MaxPerSource),
	}
	flatSources := []sources.Source{
		sources.NewMagicBricks(logger, timeout, cfg.Scraping.MaxPerSource),
		sources.New99Acres(logger, timeout, cfg.Scraping.MaxPerSource),
	}

	gen := generator.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	agg := aggregator.New(roomSources, flatSources, gen, logger, cfg.FallbackCount)
	store := cache.NewStore()

	if cfg.Scheduler.Enabled {
		warmup := scheduler.New(agg, store, logger, time.Duration(cfg.Scheduler.IntervalMinutes)*time.Minute)
		warmup.Start()
		defer warmup.Stop()
	}

	router := gin.Default()
	router.Use(cors.Default())

	api.SetupRoutes(router, api.NewHandler(agg, gen, store, logger, cfg))

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
