package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/switchbox-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeCapacityExceeded indicates a box without enough module space.
	ErrCodeCapacityExceeded = "capacity_exceeded"
	// ErrCodeCatalogUnavailable indicates the catalog backend is unavailable.
	ErrCodeCatalogUnavailable = "catalog_unavailable"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"capacity_exceeded"`
	Message string `json:"message,omitempty" example:"Not enough module space in the box, only 1 modules available"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeCapacityExceeded
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusServiceUnavailable:
		return ErrCodeCatalogUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// BoxResponse is the API view of a box, enriched with module accounting.
// @Description Installation box with its contents and module usage
type BoxResponse struct {
	ID               string                 `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name             string                 `json:"name,omitempty" example:"Kitchen Main"`
	Area             string                 `json:"area,omitempty" example:"Kitchen"`
	Description      string                 `json:"description,omitempty"`
	BoxType          model.BoxType          `json:"box_type" example:"55 Box"`
	ModuleCapacity   int                    `json:"module_capacity" example:"2"`
	Color            string                 `json:"color,omitempty" example:"White"`
	Products         []model.BoxProductLine `json:"products"`
	UsedModules      int                    `json:"used_modules" example:"1"`
	RemainingModules int                    `json:"remaining_modules" example:"1"`
} // @name BoxResponse

// NewBoxResponse builds a BoxResponse from a box snapshot and its module usage.
func NewBoxResponse(box model.Box, used, remaining int) BoxResponse {
	products := box.Products
	if products == nil {
		products = []model.BoxProductLine{}
	}
	return BoxResponse{
		ID:               box.ID,
		Name:             box.Name,
		Area:             box.Area,
		Description:      box.Description,
		BoxType:          box.BoxType,
		ModuleCapacity:   box.ModuleCapacity,
		Color:            box.Color,
		Products:         products,
		UsedModules:      used,
		RemainingModules: remaining,
	}
}

// ProjectResponse is the API view of the whole project state.
// @Description Full project state: client, boxes and complementary products
type ProjectResponse struct {
	ClientName    string                       `json:"client_name,omitempty" example:"Cohen Residence"`
	Boxes         []BoxResponse                `json:"boxes"`
	Complementary []model.ComplementaryProduct `json:"complementary_products"`
} // @name ProjectResponse
