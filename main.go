package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"detailhq/config"
	"detailhq/cron"
	"detailhq/database"
	catalogRepo "detailhq/database/repository/catalog"
	"detailhq/handlers"
	"detailhq/middleware"
	"detailhq/routes"
	"detailhq/services/vision"
	"detailhq/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalog := catalogRepo.NewMongoCatalogRepo()

	// vision pipeline.
	visionClient := vision.NewFallbackChain(config.AppConfig.GeminiAPIKey, config.VisionModelChain(), logger)
	aggregator := vision.NewAggregator(visionClient, logger)
	summaryCache := vision.NewSummaryCache(utils.GetCacheClient(), 24*time.Hour)

	// background analysis worker and queue client.
	cron.InitAnalysisWorker(aggregator, summaryCache, logger)
	queueClient := cron.NewAnalysisQueueClient()
	defer queueClient.Close()

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		Quote:    handlers.NewQuoteHandler(catalog, logger),
		Catalog:  handlers.NewCatalogHandler(catalog, logger),
		Analysis: handlers.NewAnalysisHandler(aggregator, summaryCache, catalog, queueClient, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
