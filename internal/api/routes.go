package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.GET("/listings", handler.GetListings)
		api.GET("/listings/:id", handler.GetListingByID)
		api.POST("/scrape", handler.Scrape)
		api.GET("/cities", handler.GetCities)
		api.GET("/compare", handler.GetCompare)
	}
}
