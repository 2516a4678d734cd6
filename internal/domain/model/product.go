// Package model defines the core domain entities for the switchbox service.
package model

// ProductAttributes holds the catalog attributes the configurator inspects.
// Manufacturer metadata the service never reads lives in Extra.
type ProductAttributes struct {
	// ModuleSize is the number of modules the product occupies inside a box.
	// Zero means the product is not installable in a box.
	ModuleSize int `json:"module_size,omitempty" bson:"module_size,omitempty" example:"2"`
	// Color is the product color, used for box color matching.
	Color string `json:"color,omitempty" bson:"color,omitempty" example:"White"`
	// Category is the catalog category (e.g. Switches, Sockets).
	Category string `json:"category,omitempty" bson:"category,omitempty" example:"Switches"`
	// IncludesFrame indicates the product ships with its own frame.
	IncludesFrame bool `json:"includes_frame,omitempty" bson:"includes_frame,omitempty"`
	// IsCompletePanel indicates the product is a complete panel and needs no frame.
	IsCompletePanel bool `json:"is_complete_panel,omitempty" bson:"is_complete_panel,omitempty"`
	// Extra carries additional manufacturer attributes as-is.
	Extra map[string]string `json:"extra,omitempty" bson:"extra,omitempty"`
}

// Product represents a catalog entity. It is read-only to the configurator.
//
// @Description Catalog product record
type Product struct {
	SKU          string            `json:"sku" bson:"sku" example:"HD4001"`
	Name         string            `json:"name" bson:"name" example:"1-Way Switch"`
	Description  string            `json:"description" bson:"description" example:"1-module one-way switch"`
	RegularPrice float64           `json:"regular_price" bson:"regular_price" example:"12.50"`
	Series       string            `json:"series" bson:"series" example:"Axolute"`
	Brand        string            `json:"brand" bson:"brand" example:"Bticino"`
	Attributes   ProductAttributes `json:"attributes" bson:"attributes"`
} // @name Product

// IsBoxCompatible reports whether the product can be installed inside a box.
// A product is installable iff it declares a module size.
func (p Product) IsBoxCompatible() bool {
	return p.Attributes.ModuleSize >= 1
}

// ComplementaryProduct is a product tracked in the project but not installed
// inside any box. It carries no capacity constraint.
type ComplementaryProduct struct {
	SKU         string `json:"sku" example:"HD4915"`
	Name        string `json:"name" example:"Junction Box Cover"`
	Quantity    int    `json:"quantity" example:"3"`
	Area        string `json:"area" example:"Hallway"`
	Description string `json:"description,omitempty"`
} // @name ComplementaryProduct
