package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/switchbox-service/internal/service"
)

// CatalogRoutes handles catalog route registration.
type CatalogRoutes struct {
	handler *CatalogHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(catalog service.Catalog, searcher *service.Searcher) *CatalogRoutes {
	return &CatalogRoutes{
		handler: NewCatalogHandler(catalog, searcher),
	}
}

// RegisterPublicRoutes registers catalog routes on the API group.
func (r *CatalogRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/search", r.handler.SearchProducts)
	rg.GET("/catalog/products/:sku", r.handler.GetProductBySKU)
	rg.GET("/catalog/brands", r.handler.ListBrands)
	rg.GET("/catalog/brands/:brand/series", r.handler.ListSeries)
	rg.GET("/catalog/brands/:brand/products", r.handler.ListBrandProducts)
}
