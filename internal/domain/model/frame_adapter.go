package model

// FrameAdapterType distinguishes the two kinds of derived auxiliary parts.
type FrameAdapterType string

const (
	// PartFrame is a cover frame derived for boxes whose products need one.
	PartFrame FrameAdapterType = "frame"
	// PartAdapter is a mounting adapter derived for every populated box.
	PartAdapter FrameAdapterType = "adapter"
)

// FrameAdapter is an auxiliary part derived from a box configuration.
// It is recomputed on demand and never stored as user data.
//
// @Description Derived frame or adapter line item
type FrameAdapter struct {
	Type           FrameAdapterType `json:"type" example:"frame"`
	SKU            string           `json:"sku" example:"FRAME-RECTANGULARBOX-4-WHITE"`
	Name           string           `json:"name" example:"Frame for Rectangular Box (4 modules, White)"`
	RegularPrice   float64          `json:"regular_price" example:"35.00"`
	ForBoxType     BoxType          `json:"for_box_type" example:"Rectangular Box"`
	ModuleCapacity int              `json:"module_capacity" example:"4"`
	Color          string           `json:"color,omitempty" example:"White"`
} // @name FrameAdapter
