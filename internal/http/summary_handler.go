package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/switchbox-service/internal/service"
)

// SummaryHandler provides HTTP handlers for summary and export routes.
type SummaryHandler struct {
	summary *service.SummaryService
	export  *service.ExportService
}

// NewSummaryHandler creates a new SummaryHandler instance.
func NewSummaryHandler(summary *service.SummaryService, export *service.ExportService) *SummaryHandler {
	return &SummaryHandler{
		summary: summary,
		export:  export,
	}
}

// GetSummary handles GET /api/summary requests.
//
// @Summary      Generate the SKU summary
// @Description  Aggregates installed products across all boxes, derived frames and adapters, and complementary products into per-SKU rows with a grand total. Rows are sorted lexicographically by SKU.
// @Tags         Summary
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "SKU summary"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.summary.GenerateSkuSummary(c.Request.Context()))
}

// GetFramesAdapters handles GET /api/summary/frames-adapters requests.
//
// @Summary      List derived frames and adapters
// @Description  Returns the auxiliary parts derived from the current boxes: one frame per non-empty box without a frame-included or complete-panel product, and one adapter per non-empty box.
// @Tags         Summary
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Frames and adapters"
// @Router       /api/summary/frames-adapters [get]
func (h *SummaryHandler) GetFramesAdapters(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(gin.H{"frames_adapters": h.summary.FramesAndAdapters()})
}

// ExportCSV handles GET /api/summary/export requests.
//
// @Summary      Export the project as CSV
// @Description  Streams a CSV document with the client header, per-SKU summary with grand total, box contents, frames and adapters, and complementary products.
// @Tags         Summary
// @Produce      text/csv
// @Success      200 {string} string "CSV document"
// @Router       /api/summary/export [get]
func (h *SummaryHandler) ExportCSV(c *gin.Context) {
	csv := h.export.ExportCSV(c.Request.Context())

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.export.Filename()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
