// Package service contains the business logic for the switchbox service.
package service

import (
	"github.com/guttosm/switchbox-service/internal/domain/model"
)

// UsedModules returns the total modules occupied by the box's product lines.
func UsedModules(box model.Box) int {
	used := 0
	for _, line := range box.Products {
		used += line.Modules()
	}
	return used
}

// RemainingModules returns the free module capacity of the box.
// Admission checks keep this from ever being committed as negative.
func RemainingModules(box model.Box) int {
	return box.ModuleCapacity - UsedModules(box)
}

// CanAdd reports whether quantity units of the product fit in the box's
// remaining capacity. This is the sole admission gate for both new lines and
// quantity increases; callers pass the incremental amount, not line totals.
func CanAdd(box model.Box, product model.Product, quantity int) bool {
	return product.Attributes.ModuleSize*quantity <= RemainingModules(box)
}
