package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pantrychef/backend/config"
	httpDelivery "github.com/pantrychef/backend/internal/delivery/http"
	"github.com/pantrychef/backend/internal/domain"
	"github.com/pantrychef/backend/internal/infrastructure/cache"
	"github.com/pantrychef/backend/internal/infrastructure/usda"
	"github.com/pantrychef/backend/internal/refdata"
	"github.com/pantrychef/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PantryChef Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Reference data: start from the curated seed, refresh out of band.
	seed, err := refdata.SeedSnapshot()
	if err != nil {
		log.Fatalf("Failed to load seed reference data: %v", err)
	}
	store := refdata.NewStore(seed)
	log.Printf("Reference data %s: %d categories, %d portion factors",
		seed.Version, len(seed.Rules.AllCategories()), seed.PortionCount())

	// USDA enrichment is optional; without a key the seed tables serve alone.
	var portionSource domain.PortionSource
	if cfg.USDA.APIKey != "" {
		usdaClient := usda.NewClient(cfg.USDA.APIKey, cfg.USDA.BaseURL)
		if cfg.Server.Environment == "development" {
			usdaClient.SetDebug(true)
			log.Printf("USDA client debug mode enabled")
		}
		portionSource = usdaClient
		log.Printf("USDA API configured: %s", cfg.USDA.BaseURL)
	} else {
		log.Printf("USDA API key not configured; portion enrichment disabled")
	}

	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache: %s (TTL %s)", cfg.Cache.Type, cfg.Cache.TTL)

	refresher := usecase.NewRefreshService(store, portionSource, memoryCache, usecase.RefreshConfig{
		CacheTTL:           cfg.Cache.TTL,
		Interval:           cfg.Validation.RefreshInterval,
		EnableDebugLogging: cfg.Validation.EnableDebugLogging,
	})
	refresher.Start(context.Background())

	// Validation core
	classifier := usecase.NewClassifier(store, usecase.ClassifierConfig{
		SimilarityThreshold: cfg.Validation.SimilarityThreshold,
		FuzzyEditDistance:   cfg.Validation.FuzzyEditDistance,
		EnableDebugLogging:  cfg.Validation.EnableDebugLogging,
	})
	validator := usecase.NewValidator(store, classifier, usecase.ValidatorConfig{
		MagnitudeWarnLimit: cfg.Validation.MagnitudeWarnLimit,
		CountWarnLimit:     cfg.Validation.CountWarnLimit,
		BatchWorkers:       cfg.Validation.BatchWorkers,
		EnableDebugLogging: cfg.Validation.EnableDebugLogging,
	})
	converter := usecase.NewConverter(store)

	log.Printf("Validation: similarity=%.2f, magnitude_warn=%.0f, workers=%d",
		cfg.Validation.SimilarityThreshold,
		cfg.Validation.MagnitudeWarnLimit,
		cfg.Validation.BatchWorkers)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(validator, converter, refresher, store)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
