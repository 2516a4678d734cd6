//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMongoDB_ConnectsAndIndexes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	require.NoError(t, db.HealthCheck(ctx))

	// The unique SKU index rejects duplicate inserts.
	_, err := db.Products.InsertOne(ctx, map[string]interface{}{"sku": "DUP-1"})
	require.NoError(t, err)
	_, err = db.Products.InsertOne(ctx, map[string]interface{}{"sku": "DUP-1"})
	assert.Error(t, err)
}

func TestNewMongoDB_InvalidURI(t *testing.T) {
	t.Parallel()

	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 2 * time.Second
	cfg.ServerSelectionTimeout = time.Second

	_, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "switchbox_test", cfg)
	assert.Error(t, err)
}
