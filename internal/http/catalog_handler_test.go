package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_SearchProducts(t *testing.T) {
	catalog := newFakeCatalog(
		switchProduct("HD4001", 1),
		switchProduct("HD4012", 2),
	)
	router, _ := newTestRouter(catalog)

	w := doJSON(t, router, http.MethodGet, "/api/catalog/search?q=HD", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Products []struct {
				SKU string `json:"sku"`
			} `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Products, 2)
}

func TestCatalogHandler_GetProductBySKU(t *testing.T) {
	catalog := newFakeCatalog(switchProduct("HD4001", 1))

	tests := []struct {
		name       string
		sku        string
		wantStatus int
	}{
		{name: "known sku", sku: "HD4001", wantStatus: http.StatusOK},
		{name: "unknown sku", sku: "HD9999", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(catalog)
			w := doJSON(t, router, http.MethodGet, "/api/catalog/products/"+tt.sku, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCatalogHandler_GetProductBySKU_Unavailable(t *testing.T) {
	catalog := newFakeCatalog(switchProduct("HD4001", 1))
	catalog.err = errors.New("connection refused")

	router, _ := newTestRouter(catalog)
	w := doJSON(t, router, http.MethodGet, "/api/catalog/products/HD4001", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCatalogHandler_Brands(t *testing.T) {
	router, _ := newTestRouter(newFakeCatalog())

	w := doJSON(t, router, http.MethodGet, "/api/catalog/brands", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Brands []string `json:"brands"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Bticino"}, resp.Data.Brands)
}

func TestCatalogHandler_BrandProducts(t *testing.T) {
	dimmer := switchProduct("L4411", 1)
	dimmer.Series = "Living Light"
	catalog := newFakeCatalog(switchProduct("HD4001", 1), dimmer)

	tests := []struct {
		name     string
		path     string
		wantSKUs int
	}{
		{name: "whole brand", path: "/api/catalog/brands/Bticino/products", wantSKUs: 2},
		{name: "narrowed to series", path: "/api/catalog/brands/Bticino/products?series=Living+Light", wantSKUs: 1},
		{name: "unknown brand", path: "/api/catalog/brands/Nobody/products", wantSKUs: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(catalog)
			w := doJSON(t, router, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				Data struct {
					Products []struct {
						SKU string `json:"sku"`
					} `json:"products"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Len(t, resp.Data.Products, tt.wantSKUs)
		})
	}
}

func TestCatalogHandler_BrandProducts_Unavailable(t *testing.T) {
	catalog := newFakeCatalog(switchProduct("HD4001", 1))
	catalog.err = errors.New("connection refused")

	router, _ := newTestRouter(catalog)
	w := doJSON(t, router, http.MethodGet, "/api/catalog/brands/Bticino/products", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCatalogHandler_Series(t *testing.T) {
	router, _ := newTestRouter(newFakeCatalog())

	w := doJSON(t, router, http.MethodGet, "/api/catalog/brands/Bticino/series", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Brand  string   `json:"brand"`
			Series []string `json:"series"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bticino", resp.Data.Brand)
	assert.Equal(t, []string{"Axolute"}, resp.Data.Series)
}
