package service

import (
	"context"
	"fmt"
	"strings"
)

// ExportService renders the project as the quote CSV handed to clients.
// Sections: Summary by SKU, Box Contents, Frames and Adapters, Complementary
// Products. Free-text fields are surrounded by quotes; embedded quotes are
// not escaped further, matching the established export format.
type ExportService struct {
	store   *ProjectStore
	summary *SummaryService
}

// NewExportService creates an export service.
func NewExportService(store *ProjectStore, summary *SummaryService) *ExportService {
	return &ExportService{
		store:   store,
		summary: summary,
	}
}

// Filename returns the suggested download filename for the export.
func (e *ExportService) Filename() string {
	client := e.store.ClientName()
	if client == "" {
		client = "switch-project"
	}
	return client + "_summary.csv"
}

// ExportCSV renders the full project export.
func (e *ExportService) ExportCSV(ctx context.Context) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Client: %s\n\n", e.store.ClientName())

	e.writeSummarySection(ctx, &b)
	e.writeBoxContents(&b)
	e.writeFramesAndAdapters(&b)
	e.writeComplementary(&b)

	return b.String()
}

func (e *ExportService) writeSummarySection(ctx context.Context, b *strings.Builder) {
	summary := e.summary.GenerateSkuSummary(ctx)

	b.WriteString("Summary by SKU\n")
	b.WriteString("SKU,Product Name,Quantity,Unit Price,Total Price\n")
	for _, row := range summary.Rows {
		fmt.Fprintf(b, "%s,\"%s\",%d,%.2f,%.2f\n",
			row.SKU, row.ProductName, row.Quantity, row.UnitPrice, row.TotalPrice)
	}
	fmt.Fprintf(b, ",,,,%.2f\n\n", summary.GrandTotal)
}

func (e *ExportService) writeBoxContents(b *strings.Builder) {
	b.WriteString("Box Contents\n")
	b.WriteString("Box Name,Area,Description,Color,Products\n")

	for _, box := range e.store.Boxes() {
		lines := make([]string, 0, len(box.Products))
		for _, line := range box.Products {
			lines = append(lines, fmt.Sprintf("%s (%dx, %s)",
				line.Product.SKU, line.Quantity, moduleLabel(line.Product.Attributes.ModuleSize)))
		}

		color := box.Color
		if !box.HasColor() {
			color = "None"
		}
		fmt.Fprintf(b, "\"%s\",\"%s\",\"%s\",\"%s\",\"%s\"\n",
			box.Name, box.Area, box.Description, color, strings.Join(lines, "; "))
	}
	b.WriteString("\n")
}

func (e *ExportService) writeFramesAndAdapters(b *strings.Builder) {
	parts := e.summary.FramesAndAdapters()
	if len(parts) == 0 {
		return
	}

	b.WriteString("Frames and Adapters\n")
	b.WriteString("Type,SKU,Name,For Box,Module Capacity,Color\n")
	for _, part := range parts {
		color := part.Color
		if color == "" {
			color = "None"
		}
		fmt.Fprintf(b, "\"%s\",\"%s\",\"%s\",\"%s\",%d,\"%s\"\n",
			part.Type, part.SKU, part.Name, part.ForBoxType, part.ModuleCapacity, color)
	}
	b.WriteString("\n")
}

func (e *ExportService) writeComplementary(b *strings.Builder) {
	products := e.store.ComplementaryProducts()
	if len(products) == 0 {
		return
	}

	b.WriteString("Complementary Products\n")
	b.WriteString("SKU,Product Name,Quantity,Area,Description\n")
	for _, p := range products {
		fmt.Fprintf(b, "\"%s\",\"%s\",%d,\"%s\",\"%s\"\n",
			p.SKU, p.Name, p.Quantity, p.Area, p.Description)
	}
}

// moduleLabel formats a module count with the right plural.
func moduleLabel(size int) string {
	if size == 1 {
		return "1 module"
	}
	return fmt.Sprintf("%d modules", size)
}
