// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/switchbox-service/internal/circuitbreaker"
	"github.com/guttosm/switchbox-service/internal/domain/model"
)

// CatalogRepositoryWithCircuitBreaker wraps CatalogRepository with circuit
// breaker protection. When the circuit is open, reads degrade to empty
// results so the configurator keeps working without the catalog store.
type CatalogRepositoryWithCircuitBreaker struct {
	repo           *CatalogRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCatalogRepositoryWithCircuitBreaker(repo *CatalogRepository, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Search searches the catalog with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) Search(ctx context.Context, query, colorFilter string, limit int) ([]model.Product, error) {
	var result []model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Search(ctx, query, colorFilter, limit)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return []model.Product{}, nil
	}
	return result, err
}

// GetBySKU fetches a product with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var result *model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetBySKU(ctx, sku)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Brands lists brands with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) Brands(ctx context.Context) ([]string, error) {
	var result []string
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Brands(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return []string{}, nil
	}
	return result, err
}

// SeriesByBrand lists a brand's series with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) SeriesByBrand(ctx context.Context, brand string) ([]string, error) {
	var result []string
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.SeriesByBrand(ctx, brand)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return []string{}, nil
	}
	return result, err
}

// ByBrandSeries lists a brand's products with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) ByBrandSeries(ctx context.Context, brand, series string) ([]model.Product, error) {
	var result []model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ByBrandSeries(ctx, brand, series)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return []model.Product{}, nil
	}
	return result, err
}

// Count counts the catalog with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx)
		return cbErr
	})
	return result, err
}

// Seed inserts products with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) Seed(ctx context.Context, products []model.Product) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Seed(ctx, products)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
