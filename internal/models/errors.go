package models

import "time"

// Error envelope labels shared across handlers and middleware.
const (
	ErrLabelValidation = "Validation error"
	ErrLabelBadRequest = "Bad request"
	ErrLabelNotFound   = "User not found"
	ErrLabelInternal   = "Internal server error"
)

// ErrorResponse is the uniform JSON error envelope for all non-2xx responses
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error category
	// example: Validation error
	Error string `json:"error"`

	// Human-readable message
	// example: Username must be at least 3 characters long
	Message string `json:"message"`

	// HTTP status code, duplicated in the body
	// example: 400
	StatusCode int `json:"status_code"`

	// Response timestamp
	// example: 2023-01-15T10:30:00Z
	Timestamp string `json:"timestamp"`
}

// NewErrorResponse builds the envelope for the given status, label and message.
func NewErrorResponse(status int, label, message string) ErrorResponse {
	return ErrorResponse{
		Error:      label,
		Message:    message,
		StatusCode: status,
		Timestamp:  Timestamp(),
	}
}

// Timestamp returns the current UTC time as an RFC3339 string with a trailing Z.
// Every response body, success or failure, carries one.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
