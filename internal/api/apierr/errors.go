package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/monstermint/backend/internal/ledger"
	"github.com/monstermint/backend/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeAccountNotFound   = "ACCOUNT_NOT_FOUND"
	CodeAssetNotFound     = "ASSET_NOT_FOUND"
	CodeAccountExists     = "ACCOUNT_EXISTS"
	CodeUpstreamError     = "UPSTREAM_ERROR"
	CodeCorruptCredential = "CORRUPT_CREDENTIAL"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Ledger failures keep the remote diagnostic so operators can see
	// what the ledger said
	var remoteErr *ledger.RemoteError
	if errors.As(err, &remoteErr) {
		return &httpError{http.StatusBadGateway, APIError{
			CodeUpstreamError,
			fmt.Sprintf("ledger failure: %s", remoteErr.Error()),
		}}
	}

	switch {
	case errors.Is(err, model.ErrAccountNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAccountNotFound, "Account not found"}}
	case errors.Is(err, model.ErrAssetNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAssetNotFound, "Asset not found"}}
	case errors.Is(err, model.ErrAccountExists):
		return &httpError{http.StatusConflict, APIError{CodeAccountExists, "Account already exists"}}
	case errors.Is(err, model.ErrCorruptCredential):
		return &httpError{http.StatusInternalServerError, APIError{CodeCorruptCredential, "Stored credential is malformed"}}
	case errors.Is(err, ledger.ErrAuthExpired):
		// Should be absorbed by the refresh-and-retry protocol; if it
		// escapes, it is still an upstream problem
		return &httpError{http.StatusBadGateway, APIError{CodeUpstreamError, "ledger rejected session token"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
