package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/switchbox-service/internal/domain/model"
)

func exportFixture(t *testing.T) (*ProjectStore, *ExportService) {
	t.Helper()
	store := NewProjectStore()
	summary := NewSummaryService(store, NewInMemoryCatalog(SampleProducts))
	return store, NewExportService(store, summary)
}

func TestExportService_Filename(t *testing.T) {
	tests := []struct {
		name     string
		client   string
		expected string
	}{
		{
			name:     "client name prefixes the file",
			client:   "Cohen Residence",
			expected: "Cohen Residence_summary.csv",
		},
		{
			name:     "empty client falls back to default",
			client:   "",
			expected: "switch-project_summary.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, export := exportFixture(t)
			store.SetClientName(tt.client)
			assert.Equal(t, tt.expected, export.Filename())
		})
	}
}

func TestExportService_ExportCSV(t *testing.T) {
	store, export := exportFixture(t)
	store.SetClientName("Cohen Residence")

	box, err := store.AddBox(model.BoxData{
		Name:           "Kitchen Wall",
		Area:           "Kitchen",
		BoxType:        model.BoxTypeRectangular,
		ModuleCapacity: 4,
		Color:          "White",
	})
	require.NoError(t, err)

	product := testProduct("HD4001", 1)
	product.RegularPrice = 12.50
	require.True(t, store.AddProduct(box.ID, product, 2))
	require.True(t, store.AddComplementaryProduct(model.ComplementaryProduct{
		SKU: "CBL-3X15", Name: "Installation Cable", Quantity: 10, Area: "Kitchen",
	}))

	csv := export.ExportCSV(context.Background())

	assert.True(t, strings.HasPrefix(csv, "Client: Cohen Residence\n"))

	// All four sections are present.
	assert.Contains(t, csv, "Summary by SKU\n")
	assert.Contains(t, csv, "Box Contents\n")
	assert.Contains(t, csv, "Frames and Adapters\n")
	assert.Contains(t, csv, "Complementary Products\n")

	// Summary rows carry quantity, unit price, and line total.
	assert.Contains(t, csv, "HD4001,\"Test HD4001\",2,12.50,25.00\n")
	assert.Contains(t, csv, "FRAME-RECTANGULARBOX-4-WHITE")
	assert.Contains(t, csv, "ADAPTER-RECTANGULARBOX-4")

	// Box contents line lists the installed products.
	assert.Contains(t, csv, "\"Kitchen Wall\",\"Kitchen\",\"\",\"White\",\"HD4001 (2x, 1 module)\"")

	// Complementary section row.
	assert.Contains(t, csv, "\"CBL-3X15\",\"Installation Cable\",10,\"Kitchen\",\"\"")

	// Grand total: 25.00 products + 18.50 cable + 35.00 frame + 12.50 adapter.
	assert.Contains(t, csv, ",,,,91.00\n")
}

func TestExportService_EmptySectionsOmitted(t *testing.T) {
	_, export := exportFixture(t)

	csv := export.ExportCSV(context.Background())

	// The summary and box sections always render their headers; the optional
	// sections disappear when empty.
	assert.Contains(t, csv, "Summary by SKU\n")
	assert.Contains(t, csv, "Box Contents\n")
	assert.NotContains(t, csv, "Frames and Adapters\n")
	assert.NotContains(t, csv, "Complementary Products\n")

	// Empty project still reports a zero grand total row.
	assert.Contains(t, csv, ",,,,0.00\n")
	assert.True(t, strings.HasPrefix(csv, "Client: \n"))
}
