package models

// Error kinds carried in ErrorResponse.Error.
const (
	ErrorKindBadRequest   = "bad_request"
	ErrorKindUnauthorized = "unauthorized"
	ErrorKindNotFound     = "not_found"
	ErrorKindConflict     = "conflict"
	ErrorKindInternal     = "internal"
	ErrorKindUnavailable  = "unavailable"
)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error kind
	// example: not_found
	Error string `json:"error"`

	// Human readable message
	// example: District not found
	Message string `json:"message"`
}

// MessageResponse is returned by write operations.
// swagger:model MessageResponse
type MessageResponse struct {
	// example: District Removed
	Message string `json:"message"`
}

// StatusResponse is the body of the health check.
// swagger:model StatusResponse
type StatusResponse struct {
	// example: ok
	Status string `json:"status"`
}
