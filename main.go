// File: deliveryhours/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deliveryhours/config"
	"deliveryhours/cron"
	"deliveryhours/database"
	venueRepo "deliveryhours/database/repository/venue"
	"deliveryhours/handlers"
	"deliveryhours/middleware"
	"deliveryhours/routes"
	"deliveryhours/services/hours"
	"deliveryhours/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(routes.CORSMiddleware())

	// Repositories.
	repo := venueRepo.NewMongoVenueRepo()
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure venue indexes: %v", err)
		}
		cancel()
	}

	// Services.
	hoursService := &hours.DefaultHoursService{
		Repo:  repo,
		Cache: utils.GetCacheClient(),
	}
	hoursHandler := handlers.NewHoursHandler(hoursService)

	routes.RegisterVenueRoutes(router, hoursHandler)
	routes.RegisterHealthRoute(router)

	cron.InitScheduleRefreshWorker(hoursService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
