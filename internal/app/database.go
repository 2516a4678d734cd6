// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/switchbox-service/config"
	"github.com/guttosm/switchbox-service/internal/circuitbreaker"
	"github.com/guttosm/switchbox-service/internal/repository"
	"github.com/guttosm/switchbox-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	CatalogRepo           repository.CatalogRepositoryInterface
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and the catalog
// repository. Returns nil if the database is disabled or connection fails;
// the service then runs on the in-memory catalog.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	catalogCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-catalog",
	})

	catalogRepo := repository.NewCatalogRepository(db)
	catalogRepoWithCB := repository.NewCatalogRepositoryWithCircuitBreaker(catalogRepo, catalogCB)

	// Seed the sample catalog when the collection is empty
	if err := seedCatalogIfEmpty(catalogRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to seed catalog")
	}

	return &DatabaseComponents{
		DB:                    db,
		CatalogRepo:           catalogRepoWithCB,
		CatalogCircuitBreaker: catalogCB,
	}
}

// seedCatalogIfEmpty loads the built-in sample products into an empty
// catalog collection so a fresh deployment can be browsed immediately.
func seedCatalogIfEmpty(repo repository.CatalogRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	if count == 0 {
		if err := repo.Seed(ctx, service.SampleProducts); err != nil {
			return err
		}
		log.Info().Int("products", len(service.SampleProducts)).Msg("Seeded sample catalog")
	}

	return nil
}
