package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/switchbox-service/internal/service"
)

// ProjectRoutes handles project, box and summary route registration.
type ProjectRoutes struct {
	handler        *ProjectHandler
	summaryHandler *SummaryHandler
}

// NewProjectRoutes creates a new ProjectRoutes instance.
func NewProjectRoutes(store *service.ProjectStore, catalog service.Catalog, summary *service.SummaryService, export *service.ExportService) *ProjectRoutes {
	return &ProjectRoutes{
		handler:        NewProjectHandler(store, catalog),
		summaryHandler: NewSummaryHandler(summary, export),
	}
}

// RegisterPublicRoutes registers project routes on the API group.
func (r *ProjectRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/project", r.handler.GetProject)
	rg.PUT("/project/client", r.handler.SetClient)
	rg.POST("/project/reset", r.handler.ResetProject)

	rg.POST("/boxes", r.handler.CreateBox)
	rg.GET("/boxes", r.handler.ListBoxes)
	rg.GET("/boxes/:id", r.handler.GetBox)
	rg.PUT("/boxes/:id", r.handler.UpdateBox)
	rg.DELETE("/boxes/:id", r.handler.DeleteBox)
	rg.POST("/boxes/:id/products", r.handler.AddProduct)
	rg.PUT("/boxes/:id/products/:sku", r.handler.UpdateProductQuantity)
	rg.DELETE("/boxes/:id/products/:sku", r.handler.RemoveProduct)

	rg.POST("/complementary", r.handler.AddComplementary)
	rg.GET("/complementary", r.handler.ListComplementary)
	rg.DELETE("/complementary/:sku", r.handler.RemoveComplementary)

	rg.GET("/summary", r.summaryHandler.GetSummary)
	rg.GET("/summary/frames-adapters", r.summaryHandler.GetFramesAdapters)
	rg.GET("/summary/export", r.summaryHandler.ExportCSV)
}

// GetHandler returns the underlying project handler.
func (r *ProjectRoutes) GetHandler() *ProjectHandler {
	return r.handler
}
