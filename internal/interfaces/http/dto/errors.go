package dto

import "net/http"

// Domain error codes surfaced over HTTP
const (
	ErrCodeNotFound              = "NOT_FOUND"
	ErrCodeInvalidInput          = "INVALID_INPUT"
	ErrCodeInternal              = "INTERNAL_ERROR"
	ErrCodeInvalidFileName       = "INVALID_FILE_NAME"
	ErrCodeInvalidImageKey       = "INVALID_IMAGE_KEY"
	ErrCodeFileTooLarge          = "FILE_TOO_LARGE"
	ErrCodeDisallowedContentType = "DISALLOWED_CONTENT_TYPE"
	ErrCodeStorageUploadFailed   = "STORAGE_UPLOAD_FAILED"
	ErrCodeStorageDeleteFailed   = "STORAGE_DELETE_FAILED"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:              http.StatusNotFound,
	ErrCodeInvalidInput:          http.StatusBadRequest,
	ErrCodeInvalidFileName:       http.StatusBadRequest,
	ErrCodeInvalidImageKey:       http.StatusBadRequest,
	ErrCodeFileTooLarge:          http.StatusRequestEntityTooLarge,
	ErrCodeDisallowedContentType: http.StatusUnsupportedMediaType,
	ErrCodeStorageUploadFailed:   http.StatusInternalServerError,
	ErrCodeStorageDeleteFailed:   http.StatusInternalServerError,
	ErrCodeInternal:              http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
