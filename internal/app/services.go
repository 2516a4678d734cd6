// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/switchbox-service/config"
	"github.com/guttosm/switchbox-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Store    *service.ProjectStore
	Catalog  service.Catalog
	Searcher *service.Searcher
	Summary  *service.SummaryService
	Export   *service.ExportService
}

// InitializeServices initializes business logic services. The catalog comes
// from the MongoDB backend when available, otherwise from the products file
// or the built-in sample set.
func InitializeServices(cfg config.CatalogConfig, dbComponents *DatabaseComponents) *ServiceComponents {
	catalog := buildCatalog(cfg, dbComponents)

	store := service.NewProjectStore()
	summary := service.NewSummaryService(store, catalog)

	return &ServiceComponents{
		Store:    store,
		Catalog:  catalog,
		Searcher: service.NewSearcher(catalog),
		Summary:  summary,
		Export:   service.NewExportService(store, summary),
	}
}

// buildCatalog picks the catalog source in priority order: MongoDB backend,
// products file, built-in samples.
func buildCatalog(cfg config.CatalogConfig, dbComponents *DatabaseComponents) service.Catalog {
	if dbComponents != nil && dbComponents.CatalogRepo != nil {
		log.Info().Msg("Using MongoDB catalog backend")
		return service.NewBackendCatalog(dbComponents.CatalogRepo, cfg.EmptyQueryLimit)
	}

	products := service.SampleProducts
	if cfg.ProductsFile != "" {
		loaded, err := service.LoadProductsFile(cfg.ProductsFile)
		if err != nil {
			log.Warn().Err(err).Str("file", cfg.ProductsFile).Msg("Failed to load products file - using sample catalog")
		} else {
			products = loaded
		}
	}

	opts := []service.CatalogOption{}
	if cfg.EmptyQueryLimit > 0 {
		opts = append(opts, service.WithEmptyQueryLimit(cfg.EmptyQueryLimit))
	}
	if cfg.CacheSize > 0 {
		opts = append(opts, service.WithSearchCache(cfg.CacheSize, cfg.CacheTTL))
	}

	return service.NewInMemoryCatalog(products, opts...)
}
