package service

import (
	"context"
	"sort"
	"time"

	"github.com/guttosm/switchbox-service/internal/domain/model"
	"github.com/guttosm/switchbox-service/internal/logger"
	"github.com/guttosm/switchbox-service/internal/metrics"
)

// SummaryService folds box product lines, complementary products, and
// derived frames/adapters into a per-SKU rollup. It is purely derived state
// and never mutates the project.
type SummaryService struct {
	store   *ProjectStore
	catalog Catalog
}

// NewSummaryService creates a summary service over the given project and catalog.
func NewSummaryService(store *ProjectStore, catalog Catalog) *SummaryService {
	return &SummaryService{
		store:   store,
		catalog: catalog,
	}
}

// FramesAndAdapters returns the auxiliary parts derived from the current boxes.
func (s *SummaryService) FramesAndAdapters() []model.FrameAdapter {
	return DeriveFramesAndAdapters(s.store.Boxes())
}

// GenerateSkuSummary builds the per-SKU rollup, sorted lexicographically by
// SKU. The unit price of a SKU is fixed at first encounter; later sources
// only add quantity. Complementary SKUs not seen elsewhere are resolved via
// the catalog, degrading to a zero price when the lookup fails or misses.
func (s *SummaryService) GenerateSkuSummary(ctx context.Context) model.SkuSummary {
	start := time.Now()
	defer func() {
		metrics.RecordSummaryGeneration(time.Since(start))
	}()

	rows := make(map[string]*model.SkuSummaryRow)

	for _, box := range s.store.Boxes() {
		for _, line := range box.Products {
			addToSummary(rows, line.Product.SKU, line.Product.Name, line.Product.RegularPrice, line.Quantity, false)
		}
	}

	for _, cp := range s.store.ComplementaryProducts() {
		if row, ok := rows[cp.SKU]; ok {
			row.Quantity += cp.Quantity
			row.TotalPrice = float64(row.Quantity) * row.UnitPrice
			continue
		}

		unitPrice := s.lookupUnitPrice(ctx, cp.SKU)
		addToSummary(rows, cp.SKU, cp.Name, unitPrice, cp.Quantity, false)
	}

	for _, part := range s.FramesAndAdapters() {
		addToSummary(rows, part.SKU, part.Name, part.RegularPrice, 1, true)
	}

	out := make([]model.SkuSummaryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })

	total := 0.0
	for _, row := range out {
		total += row.TotalPrice
	}

	return model.SkuSummary{Rows: out, GrandTotal: total}
}

// lookupUnitPrice resolves a complementary product's unit price from the
// catalog. Any lookup failure degrades to zero rather than erroring.
func (s *SummaryService) lookupUnitPrice(ctx context.Context, sku string) float64 {
	if s.catalog == nil {
		return 0
	}

	product, err := s.catalog.BySKU(ctx, sku)
	if err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Str("sku", sku).Msg("Catalog lookup failed, pricing as zero")
		return 0
	}
	if product == nil {
		return 0
	}
	return product.RegularPrice
}

// addToSummary merges a quantity into the row for the SKU, creating the row
// on first encounter. The recorded unit price wins over later sources.
func addToSummary(rows map[string]*model.SkuSummaryRow, sku, name string, unitPrice float64, quantity int, frameOrAdapter bool) {
	if row, ok := rows[sku]; ok {
		row.Quantity += quantity
		row.TotalPrice = float64(row.Quantity) * row.UnitPrice
		return
	}

	rows[sku] = &model.SkuSummaryRow{
		SKU:              sku,
		ProductName:      name,
		Quantity:         quantity,
		UnitPrice:        unitPrice,
		TotalPrice:       float64(quantity) * unitPrice,
		IsFrameOrAdapter: frameOrAdapter,
	}
}
