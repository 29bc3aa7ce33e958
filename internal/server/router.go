package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"vehicle-auction/services/auction/handler"
	"vehicle-auction/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var errStorageUnavailable = errors.New("storage unavailable")

// Options tunes the router for the environment it runs in
type Options struct {
	AllowedOrigins []string
	// HealthCheck probes backing storage. Nil reports healthy.
	HealthCheck func(ctx context.Context) error
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.AuctionServiceInterface, opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // tag every request
	router.Use(RequestLoggerMiddleware) // custom request logging
	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  opts.AllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowHeaders:  []string{"Accept", "Content-Type", RequestIDHeader},
			ExposeHeaders: []string{RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	router.GET("/health", healthHandler(opts.HealthCheck))

	auctionHandler := handler.NewAuctionHandler(service)

	inventory := router.Group("/inventory")
	{
		inventory.GET("", auctionHandler.ListVehiclesHandler)
		inventory.POST("", auctionHandler.AddVehicleHandler)
		inventory.GET("/:vehicle_id/bids", auctionHandler.GetBidsByVehicleHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.StartAuctionHandler)
		auctions.PUT("", auctionHandler.CloseAuctionHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	return router
}

func healthHandler(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				utils.Warn("health check failed", map[string]any{"error": err.Error()})
				utils.JSONError(c, http.StatusServiceUnavailable, errStorageUnavailable, "health check failed")
				return
			}
		}
		utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"}, "healthy")
	}
}
