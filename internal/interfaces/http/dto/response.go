package dto

// ErrorResponse is the wire format for all error bodies
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// MessageResponse wraps a human-readable confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
