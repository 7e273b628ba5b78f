package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// APIResponse is the standard envelope for successful responses.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse wraps data in the standard envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// HandleValidationError converts a validator error into an ErrorDetail
// listing every failed field.
func HandleValidationError(err error) *ErrorDetail {
	var validationErrors validator.ValidationErrors
	detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed")

	if errs, ok := err.(validator.ValidationErrors); ok {
		validationErrors = errs
	} else {
		return detail.WithDetails(err.Error())
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, formatValidationError(fieldErr))
	}
	return detail.WithDetails(fields)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
