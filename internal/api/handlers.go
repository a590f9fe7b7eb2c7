package api

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pgfinder/server/config"
	"pgfinder/server/internal/aggregator"
	"pgfinder/server/internal/cache"
	"pgfinder/server/internal/generator"
	"pgfinder/server/internal/insights"
	"pgfinder/server/internal/models"
)

// demoListingCount is how many listings an explicit demo-mode scrape yields.
const demoListingCount = 15

type Handler struct {
	aggregator *aggregator.Aggregator
	generator  *generator.Generator
	store      *cache.Store
	logger     *logrus.Logger
	cfg        *config.Config
}

type ScrapeRequest struct {
	City     string `json:"city" binding:"required"`
	Area     string `json:"area"`
	DemoMode *bool  `json:"demoMode"`
}

func NewHandler(agg *aggregator.Aggregator, gen *generator.Generator, store *cache.Store, logger *logrus.Logger, cfg *config.Config) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		aggregator: agg,
		generator:  gen,
		store:      store,
		logger:     logger,
		cfg:        cfg,
	}
}

// GetListings is the primary search endpoint: aggregate (or generate when
// real=false), seed the cache, then filter and sort per the query.
func (h *Handler) GetListings(c *gin.Context) {
	var filters models.SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		h.logger.WithError(err).Error("Failed to parse search filters")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}
	if filters.City == "" {
		filters.City = "delhi"
	}
	if filters.SortBy == "" {
		filters.SortBy = "price_low"
	}

	var result models.AggregationResult
	if c.DefaultQuery("real", "true") != "false" {
		result = h.aggregator.Aggregate(c.Request.Context(), filters.City, models.PropertyType(filters.Type))
	} else {
		result = models.AggregationResult{
			Listings:   h.generator.Generate(filters.City, filters.Area, models.PropertyType(filters.Type), h.cfg.FallbackCount),
			IsRealData: false,
			Sources:    []string{aggregator.SampleSourceName},
		}
	}

	h.store.PutAll(result.Listings)

	listings := applyFilters(result.Listings, filters)
	sortListings(listings, filters.SortBy)

	dataSource := "sample"
	if result.IsRealData {
		dataSource = "real"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"count":           len(listings),
		"listings":        listings,
		"rentComparison":  insights.RentByArea(listings),
		"dataSource":      dataSource,
		"sources":         result.Sources,
		"supportedCities": config.GetCityNames(),
	})
}

// GetListingByID looks a listing up in the cache. A cold cache yields a
// plain 404; the caller decides whether to run a fresh search.
func (h *Handler) GetListingByID(c *gin.Context) {
	id := c.Param("id")

	listing, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Listing not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"listing": listing,
	})
}

// Scrape triggers an on-demand aggregation, or demo generation when
// demoMode is set (the default). Results seed the cache either way.
func (h *Handler) Scrape(c *gin.Context) {
	var req ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse scrape request")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "City is required"})
		return
	}

	demoMode := req.DemoMode == nil || *req.DemoMode

	var listings []models.Listing
	var sourceNames []string
	var scrapeError string
	if demoMode {
		listings = h.generator.Generate(req.City, req.Area, models.TypeAll, demoListingCount)
		sourceNames = []string{aggregator.SampleSourceName}
	} else {
		result := h.aggregator.Aggregate(c.Request.Context(), req.City, models.TypeAll)
		listings = result.Listings
		sourceNames = result.Sources
		scrapeError = result.Error
	}

	h.store.PutAll(listings)

	response := gin.H{
		"success":     true,
		"count":       len(listings),
		"listings":    listings,
		"sources":     sourceNames,
		"demoMode":    demoMode,
		"lastUpdated": time.Now().UTC().Format(time.RFC3339),
	}
	if scrapeError != "" {
		response["error"] = scrapeError
	}
	c.JSON(http.StatusOK, response)
}

// GetCities exposes the static reference data the filter UI is built from.
func (h *Handler) GetCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"cities":  config.SupportedCities,
	})
}

// GetCompare computes per-area rent statistics over the cached listings,
// sorted by average rent ascending.
func (h *Handler) GetCompare(c *gin.Context) {
	comparisons := insights.RentByArea(h.store.All())
	sortComparisons(comparisons)

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"rentComparison": comparisons,
	})
}
