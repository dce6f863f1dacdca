package dto

import "tms/internal/validation"

const (
	CodeValidationError   = "VALIDATION_ERROR"
	CodeDuplicatePhone    = "DUPLICATE_PHONE"
	CodeDuplicateEmail    = "DUPLICATE_EMAIL"
	CodeDuplicateDocument = "DUPLICATE_DOCUMENT"
	CodePermissionDenied  = "PERMISSION_DENIED"
	CodeSaveInProgress    = "SAVE_IN_PROGRESS"
	CodeVersionConflict   = "VERSION_CONFLICT"
	CodeNotFound          = "NOT_FOUND"
	CodeNetworkError      = "NETWORK_ERROR"
)

type ErrorDetail struct {
	Section string `json:"section,omitempty"`
	Field   string `json:"field"`
	Row     int    `json:"row"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Field   string        `json:"field,omitempty"`
	Details []ErrorDetail `json:"details,omitempty"`
}

func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// FromValidationErrors flattens the validation findings into the error body.
func FromValidationErrors(errs []validation.Error) ErrorResponse {
	details := make([]ErrorDetail, 0, len(errs))
	for _, e := range errs {
		details = append(details, ErrorDetail{
			Section: e.Section,
			Field:   e.Field,
			Row:     e.Index,
			Code:    e.Code,
			Message: e.Message,
		})
	}
	return ErrorResponse{
		Code:    CodeValidationError,
		Message: "validation failed",
		Details: details,
	}
}
