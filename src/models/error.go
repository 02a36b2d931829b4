package models

import "net/http"

// Error kinds shared across the gateway. Authorization failures are terminal
// and surfaced verbatim; they are never retried.
const (
	ErrInvalidRequest       = "invalid_request"
	ErrInvalidClient        = "invalid_client"
	ErrUnsupportedGrantType = "unsupported_grant_type"
	ErrInvalidGrant         = "invalid_grant"
	ErrUnauthorized         = "unauthorized"
	ErrForbidden            = "forbidden"
	ErrNotFound             = "not_found"
	ErrSyncFailed           = "sync_failed"
	ErrStorageError         = "storage_error"
)

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// GatewayError carries an error kind plus the HTTP status it maps to.
type GatewayError struct {
	Kind        string
	Description string
	Status      int
}

func (e *GatewayError) Error() string {
	return e.Kind + ": " + e.Description
}

func NewGatewayError(kind, description string, status int) *GatewayError {
	return &GatewayError{Kind: kind, Description: description, Status: status}
}

func InvalidRequest(description string) *GatewayError {
	return NewGatewayError(ErrInvalidRequest, description, http.StatusBadRequest)
}

func InvalidClient(description string) *GatewayError {
	return NewGatewayError(ErrInvalidClient, description, http.StatusUnauthorized)
}

func UnsupportedGrantType(description string) *GatewayError {
	return NewGatewayError(ErrUnsupportedGrantType, description, http.StatusBadRequest)
}

func InvalidGrant(description string) *GatewayError {
	return NewGatewayError(ErrInvalidGrant, description, http.StatusForbidden)
}

func Unauthorized(description string) *GatewayError {
	return NewGatewayError(ErrUnauthorized, description, http.StatusUnauthorized)
}

func Forbidden(description string) *GatewayError {
	return NewGatewayError(ErrForbidden, description, http.StatusForbidden)
}

func NotFound(description string) *GatewayError {
	return NewGatewayError(ErrNotFound, description, http.StatusNotFound)
}

func SyncFailed(description string) *GatewayError {
	return NewGatewayError(ErrSyncFailed, description, http.StatusBadGateway)
}

func StorageError(description string) *GatewayError {
	return NewGatewayError(ErrStorageError, description, http.StatusInternalServerError)
}
