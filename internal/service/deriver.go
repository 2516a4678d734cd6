package service

import (
	"fmt"
	"strings"

	"github.com/guttosm/switchbox-service/internal/domain/model"
)

// Placeholder unit prices for derived parts. Real catalog-backed pricing for
// frames and adapters is not implemented; these stand in until a parts
// catalog mapping exists.
const (
	FramePlaceholderPrice   = 35.00
	AdapterPlaceholderPrice = 12.50
)

// DeriveFramesAndAdapters computes the auxiliary parts implied by the
// current box roster. The list is rebuilt from scratch on every call.
//
// A box needs a frame iff it has at least one product line and none of its
// products includes a frame or is a complete panel. Every populated box gets
// exactly one adapter regardless of composition. Two boxes with identical
// (type, capacity, color) produce the same synthetic SKU and are collapsed
// later by aggregation.
func DeriveFramesAndAdapters(boxes []model.Box) []model.FrameAdapter {
	parts := make([]model.FrameAdapter, 0, len(boxes)*2)

	for _, box := range boxes {
		if len(box.Products) == 0 {
			continue
		}

		if needsFrame(box) {
			parts = append(parts, frameFor(box))
		}
		parts = append(parts, adapterFor(box))
	}

	return parts
}

// needsFrame reports whether none of the box's products already covers the
// frame requirement.
func needsFrame(box model.Box) bool {
	for _, line := range box.Products {
		if line.Product.Attributes.IncludesFrame || line.Product.Attributes.IsCompletePanel {
			return false
		}
	}
	return true
}

func frameFor(box model.Box) model.FrameAdapter {
	part := model.FrameAdapter{
		Type:           model.PartFrame,
		SKU:            frameSKU(box.BoxType, box.ModuleCapacity, box.Color),
		RegularPrice:   FramePlaceholderPrice,
		ForBoxType:     box.BoxType,
		ModuleCapacity: box.ModuleCapacity,
	}
	if box.HasColor() {
		part.Color = box.Color
		part.Name = fmt.Sprintf("Frame for %s (%d modules, %s)", box.BoxType, box.ModuleCapacity, box.Color)
	} else {
		part.Name = fmt.Sprintf("Frame for %s (%d modules)", box.BoxType, box.ModuleCapacity)
	}
	return part
}

func adapterFor(box model.Box) model.FrameAdapter {
	return model.FrameAdapter{
		Type:           model.PartAdapter,
		SKU:            adapterSKU(box.BoxType, box.ModuleCapacity),
		Name:           fmt.Sprintf("Adapter for %s (%d modules)", box.BoxType, box.ModuleCapacity),
		RegularPrice:   AdapterPlaceholderPrice,
		ForBoxType:     box.BoxType,
		ModuleCapacity: box.ModuleCapacity,
	}
}

// frameSKU builds the deterministic synthetic SKU for a frame. The color
// segment is appended only when the box carries a color constraint.
func frameSKU(t model.BoxType, capacity int, color string) string {
	sku := fmt.Sprintf("FRAME-%s-%d", typeCode(t), capacity)
	if color != "" && color != "none" {
		sku += "-" + strings.ToUpper(strings.ReplaceAll(color, " ", ""))
	}
	return sku
}

// adapterSKU builds the deterministic synthetic SKU for an adapter.
func adapterSKU(t model.BoxType, capacity int) string {
	return fmt.Sprintf("ADAPTER-%s-%d", typeCode(t), capacity)
}

// typeCode collapses a box type to its SKU segment ("55 Box" -> "55BOX").
func typeCode(t model.BoxType) string {
	return strings.ToUpper(strings.ReplaceAll(string(t), " ", ""))
}
