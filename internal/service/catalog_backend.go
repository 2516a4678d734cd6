package service

import (
	"context"

	"github.com/guttosm/switchbox-service/internal/domain/model"
	"github.com/guttosm/switchbox-service/internal/repository"
)

// BackendCatalog is a Catalog served by the MongoDB catalog repository.
// It carries the same empty-query bound as the in-memory catalog.
type BackendCatalog struct {
	repo       repository.CatalogRepositoryInterface
	emptyLimit int
}

// NewBackendCatalog creates a Catalog over the given repository.
func NewBackendCatalog(repo repository.CatalogRepositoryInterface, emptyQueryLimit int) *BackendCatalog {
	if emptyQueryLimit <= 0 {
		emptyQueryLimit = DefaultEmptyQueryLimit
	}
	return &BackendCatalog{
		repo:       repo,
		emptyLimit: emptyQueryLimit,
	}
}

// Search queries the backend. An empty query returns a bounded browsing
// sample rather than the whole catalog.
func (c *BackendCatalog) Search(ctx context.Context, query, colorFilter string) ([]model.Product, error) {
	return c.repo.Search(ctx, query, colorFilter, c.emptyLimit)
}

// BySKU fetches a single product, nil when unknown.
func (c *BackendCatalog) BySKU(ctx context.Context, sku string) (*model.Product, error) {
	return c.repo.GetBySKU(ctx, sku)
}

// Brands lists the distinct brands in the backend.
func (c *BackendCatalog) Brands(ctx context.Context) ([]string, error) {
	return c.repo.Brands(ctx)
}

// SeriesByBrand lists the distinct series of a brand.
func (c *BackendCatalog) SeriesByBrand(ctx context.Context, brand string) ([]string, error) {
	return c.repo.SeriesByBrand(ctx, brand)
}

// ProductsByBrandSeries lists a brand's products, optionally narrowed to a series.
func (c *BackendCatalog) ProductsByBrandSeries(ctx context.Context, brand, series string) ([]model.Product, error) {
	return c.repo.ByBrandSeries(ctx, brand, series)
}
