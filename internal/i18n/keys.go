// Package i18n provides internationalization support for the switchbox service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyCapacityExceeded indicates a box does not have enough module space.
	ErrKeyCapacityExceeded = "error.capacity_exceeded"
	// ErrKeyInvalidBoxType indicates an unknown box type.
	ErrKeyInvalidBoxType = "error.invalid_box_type"
	// ErrKeyInvalidCapacity indicates a capacity not offered for the box type.
	ErrKeyInvalidCapacity = "error.invalid_capacity"
	// ErrKeyProductNotInstallable indicates a product with no module size.
	ErrKeyProductNotInstallable = "error.product_not_installable"
	// ErrKeyCatalogUnavailable indicates the product catalog could not be reached.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	// ErrKeyValidationQuantity indicates invalid quantity validation.
	ErrKeyValidationQuantity = "error.validation.quantity"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeySummaryGenerated indicates successful summary generation.
	SuccessKeySummaryGenerated = "success.summary_generated"
)
