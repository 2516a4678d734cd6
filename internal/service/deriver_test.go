package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/switchbox-service/internal/domain/model"
)

func lineOf(p model.Product, qty int) model.BoxProductLine {
	return model.BoxProductLine{Product: p, Quantity: qty}
}

func productWithFrame(sku string, moduleSize int) model.Product {
	p := testProduct(sku, moduleSize)
	p.Attributes.IncludesFrame = true
	return p
}

func completePanel(sku string, moduleSize int) model.Product {
	p := testProduct(sku, moduleSize)
	p.Attributes.IsCompletePanel = true
	return p
}

func TestDeriveFramesAndAdapters(t *testing.T) {
	tests := []struct {
		name          string
		boxes         []model.Box
		expectedTypes []model.FrameAdapterType
		expectedSKUs  []string
	}{
		{
			name:          "no boxes derives nothing",
			boxes:         nil,
			expectedTypes: []model.FrameAdapterType{},
			expectedSKUs:  []string{},
		},
		{
			name:          "empty box derives nothing",
			boxes:         []model.Box{testBox(model.BoxTypeRectangular, 4)},
			expectedTypes: []model.FrameAdapterType{},
			expectedSKUs:  []string{},
		},
		{
			name: "populated box gets frame and adapter",
			boxes: []model.Box{
				testBox(model.BoxTypeRectangular, 4, lineOf(testProduct("A", 1), 1)),
			},
			expectedTypes: []model.FrameAdapterType{model.PartFrame, model.PartAdapter},
			expectedSKUs:  []string{"FRAME-RECTANGULARBOX-4", "ADAPTER-RECTANGULARBOX-4"},
		},
		{
			name: "product with integrated frame suppresses the frame only",
			boxes: []model.Box{
				testBox(model.BoxTypeRectangular, 2, lineOf(productWithFrame("GW10521", 2), 1)),
			},
			expectedTypes: []model.FrameAdapterType{model.PartAdapter},
			expectedSKUs:  []string{"ADAPTER-RECTANGULARBOX-2"},
		},
		{
			name: "complete panel suppresses the frame only",
			boxes: []model.Box{
				testBox(model.BoxTypeRectangular, 4, lineOf(completePanel("GW10601", 4), 1)),
			},
			expectedTypes: []model.FrameAdapterType{model.PartAdapter},
			expectedSKUs:  []string{"ADAPTER-RECTANGULARBOX-4"},
		},
		{
			name: "one frame bearing product covers the whole box",
			boxes: []model.Box{
				testBox(model.BoxTypeRectangular, 4,
					lineOf(testProduct("A", 1), 1),
					lineOf(productWithFrame("B", 2), 1)),
			},
			expectedTypes: []model.FrameAdapterType{model.PartAdapter},
			expectedSKUs:  []string{"ADAPTER-RECTANGULARBOX-4"},
		},
		{
			name: "55 box SKU segment",
			boxes: []model.Box{
				testBox(model.BoxType55, 2, lineOf(testProduct("A", 1), 1)),
			},
			expectedTypes: []model.FrameAdapterType{model.PartFrame, model.PartAdapter},
			expectedSKUs:  []string{"FRAME-55BOX-2", "ADAPTER-55BOX-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := DeriveFramesAndAdapters(tt.boxes)

			require.Len(t, parts, len(tt.expectedSKUs))
			for i, part := range parts {
				assert.Equal(t, tt.expectedTypes[i], part.Type)
				assert.Equal(t, tt.expectedSKUs[i], part.SKU)
			}
		})
	}
}

func TestDeriveFramesAndAdapters_ColorSegment(t *testing.T) {
	box := testBox(model.BoxTypeRectangular, 4, lineOf(testProduct("A", 1), 1))
	box.Color = "Pearl White"

	parts := DeriveFramesAndAdapters([]model.Box{box})
	require.Len(t, parts, 2)

	frame := parts[0]
	assert.Equal(t, model.PartFrame, frame.Type)
	assert.Equal(t, "FRAME-RECTANGULARBOX-4-PEARLWHITE", frame.SKU)
	assert.Equal(t, "Pearl White", frame.Color)
	assert.Contains(t, frame.Name, "Pearl White")

	// The adapter never carries a color segment.
	assert.Equal(t, "ADAPTER-RECTANGULARBOX-4", parts[1].SKU)
	assert.Empty(t, parts[1].Color)
}

func TestDeriveFramesAndAdapters_NoneColorIgnored(t *testing.T) {
	box := testBox(model.BoxTypeRectangular, 4, lineOf(testProduct("A", 1), 1))
	box.Color = "none"

	parts := DeriveFramesAndAdapters([]model.Box{box})
	require.Len(t, parts, 2)
	assert.Equal(t, "FRAME-RECTANGULARBOX-4", parts[0].SKU)
	assert.Empty(t, parts[0].Color)
}

func TestDeriveFramesAndAdapters_Deterministic(t *testing.T) {
	boxes := []model.Box{
		testBox(model.BoxTypeRectangular, 4, lineOf(testProduct("A", 1), 1)),
		testBox(model.BoxTypeRectangular, 4, lineOf(testProduct("B", 2), 1)),
	}
	boxes[1].ID = "box-2"

	parts := DeriveFramesAndAdapters(boxes)
	require.Len(t, parts, 4)

	// Identical (type, capacity, color) boxes yield identical synthetic SKUs,
	// so aggregation can collapse them later.
	assert.Equal(t, parts[0].SKU, parts[2].SKU)
	assert.Equal(t, parts[1].SKU, parts[3].SKU)

	assert.Equal(t, FramePlaceholderPrice, parts[0].RegularPrice)
	assert.Equal(t, AdapterPlaceholderPrice, parts[1].RegularPrice)
}
