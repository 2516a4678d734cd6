package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/switchbox-service/internal/domain/model"
)

func cachedProducts(skus ...string) []model.Product {
	out := make([]model.Product, len(skus))
	for i, sku := range skus {
		out[i] = model.Product{SKU: sku}
	}
	return out
}

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name          string
		setupCache    func() *ttlCache
		key           string
		expectedValue []model.Product
		expectedFound bool
	}{
		{
			name: "returns value when exists and not expired",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, time.Minute)
				c.Set("switch\x00", cachedProducts("HD4001", "HD4003"))
				return c
			},
			key:           "switch\x00",
			expectedValue: cachedProducts("HD4001", "HD4003"),
			expectedFound: true,
		},
		{
			name: "returns false when key not found",
			setupCache: func() *ttlCache {
				return newTTLCache(10, time.Minute)
			},
			key:           "missing\x00",
			expectedFound: false,
		},
		{
			name: "returns false when expired",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, 50*time.Millisecond)
				c.Set("switch\x00", cachedProducts("HD4001"))
				time.Sleep(100 * time.Millisecond)
				return c
			},
			key:           "switch\x00",
			expectedFound: false,
		},
		{
			name: "color filter is part of the key",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, time.Minute)
				c.Set("socket\x00White", cachedProducts("HD4027"))
				return c
			},
			key:           "socket\x00Anthracite",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.setupCache()
			defer c.Stop()

			value, found := c.Get(tt.key)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedValue, value)
			}
		})
	}
}

func TestTTLCache_Set(t *testing.T) {
	t.Run("evicts LRU when at capacity", func(t *testing.T) {
		c := newTTLCache(2, time.Minute)
		defer c.Stop()

		c.Set("a", cachedProducts("A"))
		c.Set("b", cachedProducts("B"))
		c.Set("c", cachedProducts("C"))

		_, okA := c.Get("a")
		_, okB := c.Get("b")
		_, okC := c.Get("c")
		assert.False(t, okA, "oldest entry evicted")
		assert.True(t, okB)
		assert.True(t, okC)
	})

	t.Run("get promotes entry over eviction", func(t *testing.T) {
		c := newTTLCache(2, time.Minute)
		defer c.Stop()

		c.Set("a", cachedProducts("A"))
		c.Set("b", cachedProducts("B"))
		c.Get("a")
		c.Set("c", cachedProducts("C"))

		_, okA := c.Get("a")
		_, okB := c.Get("b")
		assert.True(t, okA, "recently read entry survives")
		assert.False(t, okB)
	})

	t.Run("updates existing entry", func(t *testing.T) {
		c := newTTLCache(10, time.Minute)
		defer c.Stop()

		c.Set("switch\x00", cachedProducts("HD4001"))
		c.Set("switch\x00", cachedProducts("HD4001", "HD4003"))

		value, ok := c.Get("switch\x00")
		assert.True(t, ok)
		assert.Len(t, value, 2)
	})
}

func TestTTLCache_Invalidate(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("switch\x00", cachedProducts("HD4001"))
	c.Invalidate("switch\x00")

	_, found := c.Get("switch\x00")
	assert.False(t, found)

	// Invalidating an absent key is a no-op.
	c.Invalidate("missing\x00")
}

func TestTTLCache_Clear(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("a", cachedProducts("A"))
	c.Set("b", cachedProducts("B"))
	c.Clear()

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	assert.False(t, okA)
	assert.False(t, okB)
}

func TestTTLCache_Metrics(t *testing.T) {
	c := newTTLCache(2, time.Minute)
	defer c.Stop()

	c.Set("a", cachedProducts("A"))
	c.Get("a")
	c.Get("missing")
	c.Set("b", cachedProducts("B"))
	c.Set("c", cachedProducts("C"))

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, int64(1), m.Evictions)
	assert.Equal(t, 2, m.Size)
	assert.Equal(t, 2, m.Capacity)
}
