package service

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/guttosm/switchbox-service/internal/domain/model"
	"github.com/guttosm/switchbox-service/internal/metrics"
	"github.com/guttosm/switchbox-service/internal/service/cache"
)

// DefaultEmptyQueryLimit bounds how many products an empty search query
// returns instead of the whole catalog.
const DefaultEmptyQueryLimit = 20

// Catalog defines the read-only product lookup boundary. Implementations may
// be backed by an in-memory product list or by a remote store, so every call
// takes a context and may fail.
type Catalog interface {
	// Search returns products whose SKU, name, or description contains the
	// query (case-insensitive). An optional color filter matches exactly.
	// An empty query returns a bounded prefix of the catalog.
	Search(ctx context.Context, query, colorFilter string) ([]model.Product, error)
	// BySKU returns the product with the given SKU, or nil if unknown.
	BySKU(ctx context.Context, sku string) (*model.Product, error)
	// Brands returns the distinct product brands.
	Brands(ctx context.Context) ([]string, error)
	// SeriesByBrand returns the distinct series offered by a brand.
	SeriesByBrand(ctx context.Context, brand string) ([]string, error)
	// ProductsByBrandSeries returns the products of a brand, optionally
	// narrowed to one series. An empty series matches the whole brand.
	ProductsByBrandSeries(ctx context.Context, brand, series string) ([]model.Product, error)
}

// CatalogOption configures an InMemoryCatalog.
type CatalogOption func(*InMemoryCatalog)

// WithEmptyQueryLimit overrides the bounded prefix size for empty queries.
func WithEmptyQueryLimit(limit int) CatalogOption {
	return func(c *InMemoryCatalog) {
		if limit > 0 {
			c.emptyQueryLimit = limit
		}
	}
}

// WithSearchCache enables search result caching with the given capacity and TTL.
func WithSearchCache(capacity int, ttl time.Duration) CatalogOption {
	return func(c *InMemoryCatalog) {
		if capacity > 0 {
			c.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithSearchCacheInterface allows injecting a custom cache implementation.
func WithSearchCacheInterface(cc cache.Cache) CatalogOption {
	return func(c *InMemoryCatalog) {
		c.cache = cc
	}
}

// InMemoryCatalog serves lookups from a product list loaded at startup.
// It is constructed once and injected into its consumers; it holds no
// package-level state.
type InMemoryCatalog struct {
	products        []model.Product
	bySKU           map[string]model.Product
	emptyQueryLimit int
	cache           cache.Cache
}

// NewInMemoryCatalog creates a catalog over the given products.
func NewInMemoryCatalog(products []model.Product, opts ...CatalogOption) *InMemoryCatalog {
	c := &InMemoryCatalog{
		products:        products,
		bySKU:           make(map[string]model.Product, len(products)),
		emptyQueryLimit: DefaultEmptyQueryLimit,
	}
	for _, p := range products {
		c.bySKU[p.SKU] = p
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// LoadProductsFile reads a JSON product list from disk.
func LoadProductsFile(path string) ([]model.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Search implements Catalog. The context is accepted for interface symmetry
// with remote-backed catalogs; in-memory lookups never block.
func (c *InMemoryCatalog) Search(ctx context.Context, query, colorFilter string) ([]model.Product, error) {
	start := time.Now()
	defer func() {
		metrics.RecordCatalogSearch(time.Since(start))
	}()

	cacheKey := strings.ToLower(query) + "\x00" + colorFilter
	if c.cache != nil {
		if results, ok := c.cache.Get(cacheKey); ok {
			return results, nil
		}
	}

	results := c.search(query, colorFilter)

	if c.cache != nil {
		c.cache.Set(cacheKey, results)
	}
	return results, nil
}

func (c *InMemoryCatalog) search(query, colorFilter string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]model.Product, 0)

	for _, p := range c.products {
		if colorFilter != "" && p.Attributes.Color != colorFilter {
			continue
		}
		if q == "" {
			results = append(results, p)
			if len(results) >= c.emptyQueryLimit {
				break
			}
			continue
		}
		if strings.Contains(strings.ToLower(p.SKU), q) ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			results = append(results, p)
		}
	}

	return results
}

// BySKU implements Catalog.
func (c *InMemoryCatalog) BySKU(ctx context.Context, sku string) (*model.Product, error) {
	if p, ok := c.bySKU[sku]; ok {
		return &p, nil
	}
	return nil, nil
}

// Brands implements Catalog.
func (c *InMemoryCatalog) Brands(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	brands := make([]string, 0)
	for _, p := range c.products {
		if _, ok := seen[p.Brand]; !ok {
			seen[p.Brand] = struct{}{}
			brands = append(brands, p.Brand)
		}
	}
	sort.Strings(brands)
	return brands, nil
}

// SeriesByBrand implements Catalog.
func (c *InMemoryCatalog) SeriesByBrand(ctx context.Context, brand string) ([]string, error) {
	seen := make(map[string]struct{})
	series := make([]string, 0)
	for _, p := range c.products {
		if p.Brand != brand {
			continue
		}
		if _, ok := seen[p.Series]; !ok {
			seen[p.Series] = struct{}{}
			series = append(series, p.Series)
		}
	}
	sort.Strings(series)
	return series, nil
}

// ProductsByBrandSeries implements Catalog.
func (c *InMemoryCatalog) ProductsByBrandSeries(ctx context.Context, brand, series string) ([]model.Product, error) {
	return c.FilterByBrandSeries(brand, series), nil
}

// FilterByBrandSeries returns products of the brand, optionally narrowed to
// a series. An empty series matches all series of the brand.
func (c *InMemoryCatalog) FilterByBrandSeries(brand, series string) []model.Product {
	results := make([]model.Product, 0)
	for _, p := range c.products {
		if p.Brand == brand && (series == "" || p.Series == series) {
			results = append(results, p)
		}
	}
	return results
}

// Stop releases catalog resources (the search cache cleanup goroutine).
func (c *InMemoryCatalog) Stop() {
	if c.cache != nil {
		c.cache.Stop()
	}
}
