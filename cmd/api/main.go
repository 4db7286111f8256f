package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mealsnap/backend/config"
	"github.com/mealsnap/backend/internal/api"
	"github.com/mealsnap/backend/internal/database"
	"github.com/mealsnap/backend/internal/middleware"
	"github.com/mealsnap/backend/internal/router"
	"github.com/mealsnap/backend/internal/server"
	"github.com/mealsnap/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	tokenService := service.NewTokenService(cfg.JWTSecret)
	visionService := service.NewVisionService(cfg)
	enricher := service.NewEnricher(db, service.SubstringMatch{})
	mealService := service.NewMealService(db)
	profileService := service.NewProfileService(db)
	recService := service.NewRecommendationService(db)

	handlers := router.Handlers{
		Profile:         api.NewProfileHandler(profileService),
		Recommendations: api.NewRecommendationHandler(recService),
	}

	// Redis backs detection drafts and the vision rate limiter. Without it
	// detection still works; drafts are just not held server-side.
	var rateLimiter *middleware.RateLimiter
	var draftService *service.DraftService
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, detection drafts disabled: %v", err)
	} else {
		draftService = service.NewDraftService(redisClient)
		rateLimiter = middleware.NewDetectionRateLimiter(redisClient)
		handlers.Drafts = api.NewDraftHandler(draftService)
	}

	var drafts service.IDraftService
	if draftService != nil {
		drafts = draftService
	}
	handlers.Detection = api.NewDetectionHandler(visionService, enricher, drafts)
	handlers.Meals = api.NewMealHandler(mealService, drafts)

	// Meal photo uploads need S3; skip the route when AWS is not configured.
	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Printf("S3 unavailable, image uploads disabled: %v", err)
	} else {
		handlers.Images = api.NewImageHandler(service.NewImageService(s3Config))
	}

	engine := router.SetupRouter(handlers, tokenService, rateLimiter)
	srv := server.New(cfg, engine)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
