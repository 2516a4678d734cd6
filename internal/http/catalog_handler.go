package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/switchbox-service/internal/i18n"
	"github.com/guttosm/switchbox-service/internal/service"
)

// CatalogHandler provides HTTP handlers for catalog routes.
type CatalogHandler struct {
	catalog  service.Catalog
	searcher *service.Searcher
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.Catalog, searcher *service.Searcher) *CatalogHandler {
	return &CatalogHandler{
		catalog:  catalog,
		searcher: searcher,
	}
}

// SearchProducts handles GET /api/catalog/search requests.
//
// @Summary      Search the catalog
// @Description  Searches products by SKU, name or description, case-insensitively. An optional color filter restricts results to products of that color. With an empty query a bounded browsing sample is returned. Catalog lookup failures degrade to an empty result list. A newer concurrent search supersedes this one, in which case 409 is returned and the response body should be discarded.
// @Tags         Catalog
// @Produce      json
// @Param        q query string false "Search text"
// @Param        color query string false "Color filter"
// @Success      200 {object} dto.SuccessResponse "Matching products"
// @Failure      409 {object} dto.ErrorResponse "Superseded by a newer search"
// @Router       /api/catalog/search [get]
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	query := c.Query("q")
	color := c.Query("color")

	results, current := h.searcher.Search(c.Request.Context(), query, color)
	if !current {
		builder.Error(http.StatusConflict, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	builder.SuccessOK(gin.H{
		"query":    query,
		"color":    color,
		"products": results,
	})
}

// GetProductBySKU handles GET /api/catalog/products/:sku requests.
//
// @Summary      Get a product by SKU
// @Description  Returns a single catalog product.
// @Tags         Catalog
// @Produce      json
// @Param        sku path string true "Product SKU"
// @Success      200 {object} dto.SuccessResponse "Product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/catalog/products/{sku} [get]
func (h *CatalogHandler) GetProductBySKU(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, err := h.catalog.BySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		return
	}
	if product == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(product)
}

// ListBrands handles GET /api/catalog/brands requests.
//
// @Summary      List catalog brands
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Brand names"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/catalog/brands [get]
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	builder := NewResponseBuilder(c)

	brands, err := h.catalog.Brands(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	builder.SuccessOK(gin.H{"brands": brands})
}

// ListSeries handles GET /api/catalog/brands/:brand/series requests.
//
// @Summary      List a brand's series
// @Tags         Catalog
// @Produce      json
// @Param        brand path string true "Brand name"
// @Success      200 {object} dto.SuccessResponse "Series names"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/catalog/brands/{brand}/series [get]
func (h *CatalogHandler) ListSeries(c *gin.Context) {
	builder := NewResponseBuilder(c)
	brand := c.Param("brand")

	series, err := h.catalog.SeriesByBrand(c.Request.Context(), brand)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	builder.SuccessOK(gin.H{"brand": brand, "series": series})
}

// ListBrandProducts handles GET /api/catalog/brands/:brand/products requests.
//
// @Summary      List a brand's products
// @Description  Returns the products of a brand. An optional series query parameter narrows the result to that series.
// @Tags         Catalog
// @Produce      json
// @Param        brand path string true "Brand name"
// @Param        series query string false "Series filter"
// @Success      200 {object} dto.SuccessResponse "Products"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/catalog/brands/{brand}/products [get]
func (h *CatalogHandler) ListBrandProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)
	brand := c.Param("brand")
	series := c.Query("series")

	products, err := h.catalog.ProductsByBrandSeries(c.Request.Context(), brand, series)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	builder.SuccessOK(gin.H{"brand": brand, "series": series, "products": products})
}
