// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidQuantity is returned when quantity is not a positive integer.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
	// ErrMissingSKU is returned when a product SKU is empty.
	ErrMissingSKU = &ValidationError{
		Field:   "sku",
		Message: "must not be empty",
	}
	// ErrMissingBoxType is returned when the box type is empty.
	ErrMissingBoxType = &ValidationError{
		Field:   "box_type",
		Message: "must not be empty",
	}
	// ErrInvalidModuleCapacity is returned when the capacity is not positive.
	ErrInvalidModuleCapacity = &ValidationError{
		Field:   "module_capacity",
		Message: "must be a positive integer",
	}
)

// CreateBoxRequest represents the JSON request body for adding a box to the project.
//
// @Description Request to add a new installation box to the project
// @Example {"name": "Kitchen Main", "area": "Kitchen", "box_type": "55 Box", "module_capacity": 2, "color": "White"}
type CreateBoxRequest struct {
	// Name is a free-text label for the box, e.g. "Kitchen Main".
	Name string `json:"name,omitempty" example:"Kitchen Main"`
	// Area is the room or zone the box belongs to.
	Area string `json:"area,omitempty" example:"Kitchen"`
	// Description is optional free-text notes.
	Description string `json:"description,omitempty"`
	// BoxType is the physical mounting standard, e.g. "55 Box" or "Rectangular Box".
	BoxType string `json:"box_type" binding:"required" example:"55 Box"`
	// ModuleCapacity is the number of module positions the box offers.
	ModuleCapacity int `json:"module_capacity" binding:"required,gt=0" example:"2" minimum:"1"`
	// Color constrains which products may be installed. Empty or "none" means unconstrained.
	Color string `json:"color,omitempty" example:"White"`
} // @name CreateBoxRequest

// Validate performs custom validation on the request.
func (r *CreateBoxRequest) Validate() error {
	if r.BoxType == "" {
		return ErrMissingBoxType
	}
	if r.ModuleCapacity <= 0 {
		return ErrInvalidModuleCapacity
	}
	return nil
}

// UpdateBoxRequest represents the JSON request body for updating box metadata.
// Only the provided fields are changed; installed products are never touched.
//
// @Description Request to update an existing box's metadata
type UpdateBoxRequest struct {
	Name           string `json:"name,omitempty" example:"Living Room Main"`
	Area           string `json:"area,omitempty" example:"Living Room"`
	Description    string `json:"description,omitempty"`
	BoxType        string `json:"box_type,omitempty" example:"Rectangular Box"`
	ModuleCapacity int    `json:"module_capacity,omitempty" example:"3"`
	Color          string `json:"color,omitempty" example:"Black"`
} // @name UpdateBoxRequest

// AddProductRequest represents the JSON request body for installing a product into a box.
//
// @Description Request to add a catalog product to a box
// @Example {"sku": "HD4001", "quantity": 2}
type AddProductRequest struct {
	// SKU identifies the catalog product to install.
	SKU string `json:"sku" binding:"required" example:"HD4001"`
	// Quantity is the number of units to install. Must be greater than 0.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"1" minimum:"1"`
} // @name AddProductRequest

// Validate performs custom validation on the request.
func (r *AddProductRequest) Validate() error {
	if r.SKU == "" {
		return ErrMissingSKU
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// UpdateQuantityRequest represents the JSON request body for changing an
// installed product's quantity. A quantity of 0 removes the product line.
//
// @Description Request to set an installed product's quantity
type UpdateQuantityRequest struct {
	// Quantity is the new absolute quantity. 0 removes the product from the box.
	Quantity int `json:"quantity" example:"3" minimum:"0"`
} // @name UpdateQuantityRequest

// Validate performs custom validation on the request.
func (r *UpdateQuantityRequest) Validate() error {
	if r.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// AddComplementaryRequest represents the JSON request body for adding a
// complementary (non-installable) product to the project.
//
// @Description Request to add a complementary product such as cable or conduit
type AddComplementaryRequest struct {
	SKU string `json:"sku" binding:"required" example:"CBL-3X15"`
	// Quantity is the number of units. Must be greater than 0.
	Quantity    int    `json:"quantity" binding:"required,gt=0" example:"10" minimum:"1"`
	Area        string `json:"area,omitempty" example:"Hallway"`
	Description string `json:"description,omitempty"`
} // @name AddComplementaryRequest

// Validate performs custom validation on the request.
func (r *AddComplementaryRequest) Validate() error {
	if r.SKU == "" {
		return ErrMissingSKU
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// SetClientRequest represents the JSON request body for naming the project client.
//
// @Description Request to set the client name used in summary exports
type SetClientRequest struct {
	ClientName string `json:"client_name" example:"Cohen Residence"`
} // @name SetClientRequest
