// Package repository provides data access for the product catalog.
package repository

import (
	"context"
	"regexp"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/switchbox-service/internal/domain/model"
)

// CatalogRepositoryInterface defines catalog read operations against the
// product store. The catalog is read-only to the service; Seed exists for
// provisioning and tests.
type CatalogRepositoryInterface interface {
	Search(ctx context.Context, query, colorFilter string, limit int) ([]model.Product, error)
	GetBySKU(ctx context.Context, sku string) (*model.Product, error)
	Brands(ctx context.Context) ([]string, error)
	SeriesByBrand(ctx context.Context, brand string) ([]string, error)
	ByBrandSeries(ctx context.Context, brand, series string) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context, products []model.Product) error
}

// CatalogRepository provides MongoDB-backed catalog lookups.
type CatalogRepository struct {
	collection *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		collection: db.Products,
	}
}

// Search returns products whose SKU, name, or description matches the query
// (case-insensitive substring). An empty query returns up to limit products.
func (r *CatalogRepository) Search(ctx context.Context, query, colorFilter string, limit int) ([]model.Product, error) {
	filter := bson.M{}

	if query != "" {
		pattern := regexp.QuoteMeta(query)
		regex := bson.M{"$regex": pattern, "$options": "i"}
		filter["$or"] = []bson.M{
			{"sku": regex},
			{"name": regex},
			{"description": regex},
		}
	}
	if colorFilter != "" {
		filter["attributes.color"] = colorFilter
	}

	opts := options.Find().SetSort(bson.D{{Key: "sku", Value: 1}})
	if query == "" && limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	products := make([]model.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetBySKU returns the product with the given SKU, or nil if not found.
func (r *CatalogRepository) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var product model.Product
	err := r.collection.FindOne(ctx, bson.M{"sku": sku}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Brands returns the distinct brands, sorted.
func (r *CatalogRepository) Brands(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "brand", bson.M{})
}

// SeriesByBrand returns the distinct series of a brand, sorted.
func (r *CatalogRepository) SeriesByBrand(ctx context.Context, brand string) ([]string, error) {
	return r.distinctStrings(ctx, "series", bson.M{"brand": brand})
}

// ByBrandSeries returns the products of a brand sorted by SKU. A non-empty
// series narrows the result to that series.
func (r *CatalogRepository) ByBrandSeries(ctx context.Context, brand, series string) ([]model.Product, error) {
	filter := bson.M{"brand": brand}
	if series != "" {
		filter["series"] = series
	}

	opts := options.Find().SetSort(bson.D{{Key: "sku", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	products := make([]model.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns the number of catalog products.
func (r *CatalogRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Seed inserts products, replacing existing documents with the same SKU.
func (r *CatalogRepository) Seed(ctx context.Context, products []model.Product) error {
	for _, p := range products {
		opts := options.Replace().SetUpsert(true)
		if _, err := r.collection.ReplaceOne(ctx, bson.M{"sku": p.SKU}, p, opts); err != nil {
			return err
		}
	}
	return nil
}

// distinctStrings runs a distinct query and returns the sorted string values.
func (r *CatalogRepository) distinctStrings(ctx context.Context, field string, filter bson.M) ([]string, error) {
	values, err := r.collection.Distinct(ctx, field, filter)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}
