package model

// BoxType enumerates the supported enclosure types.
type BoxType string

const (
	// BoxType55 is the round 55mm enclosure.
	BoxType55 BoxType = "55 Box"
	// BoxTypeRectangular is the rectangular enclosure.
	BoxTypeRectangular BoxType = "Rectangular Box"
)

// boxCapacities maps each box type to its legal module capacities.
var boxCapacities = map[BoxType][]int{
	BoxType55:          {1, 2},
	BoxTypeRectangular: {1, 2, 3, 4, 5, 6},
}

// ValidBoxType reports whether t is a recognized box type.
func ValidBoxType(t BoxType) bool {
	_, ok := boxCapacities[t]
	return ok
}

// ValidCapacity reports whether capacity is legal for the given box type.
func ValidCapacity(t BoxType, capacity int) bool {
	for _, c := range boxCapacities[t] {
		if c == capacity {
			return true
		}
	}
	return false
}

// Capacities returns the legal module capacities for the given box type.
func Capacities(t BoxType) []int {
	caps := boxCapacities[t]
	out := make([]int, len(caps))
	copy(out, caps)
	return out
}

// BoxProductLine is a product plus quantity installed in a box.
// A box holds at most one line per SKU.
type BoxProductLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity" example:"2"`
} // @name BoxProductLine

// Modules returns the modules this line occupies (module size * quantity).
func (l BoxProductLine) Modules() int {
	return l.Product.Attributes.ModuleSize * l.Quantity
}

// Box is a user-defined enclosure with a fixed module capacity.
//
// @Description Electrical box with module capacity and installed products
type Box struct {
	ID             string           `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name           string           `json:"name" example:"Living Room Main"`
	Area           string           `json:"area" example:"Living Room"`
	Description    string           `json:"description,omitempty"`
	BoxType        BoxType          `json:"box_type" example:"Rectangular Box"`
	ModuleCapacity int              `json:"module_capacity" example:"4"`
	// Color is the box color constraint. Empty or "none" means unconstrained.
	Color    string           `json:"color,omitempty" example:"White"`
	Products []BoxProductLine `json:"products"`
} // @name Box

// HasColor reports whether the box carries a color constraint.
func (b Box) HasColor() bool {
	return b.Color != "" && b.Color != "none"
}

// LineBySKU returns the index of the product line with the given SKU,
// or -1 if the box has no such line.
func (b Box) LineBySKU(sku string) int {
	for i, line := range b.Products {
		if line.Product.SKU == sku {
			return i
		}
	}
	return -1
}

// BoxData carries the user-editable box fields for create and update.
type BoxData struct {
	Name           string  `json:"name"`
	Area           string  `json:"area"`
	Description    string  `json:"description"`
	BoxType        BoxType `json:"box_type"`
	ModuleCapacity int     `json:"module_capacity"`
	Color          string  `json:"color"`
}
