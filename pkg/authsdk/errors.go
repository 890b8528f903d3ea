package authsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/opengamebackend/auth/pkg/httpx"
)

// ErrAccountLocked is a client-side error from LoginSession: the login
// succeeded but the account is locked, so no access token was issued.
var ErrAccountLocked = errors.New("authsdk: account is locked")

// ============================================================================
// Error codes
// ============================================================================

const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeUnknownAuthProvider = "unknown_auth_provider"
	ErrorCodeInvalidCredentials  = "invalid_credentials"
	ErrorCodeInvalidRole         = "invalid_role"
	ErrorCodePlayerNotFound      = "player_not_found"
	ErrorCodeInvalidSecretKey    = "invalid_secret_key"
	ErrorCodeInvalidToken        = "invalid_token"
	ErrorCodeInsufficientRole    = "insufficient_role"
	ErrorCodeServerError         = "server_error"
	ErrorCodeRateLimitExceeded   = "rate_limit_exceeded"
)

// ============================================================================
// APIError
// ============================================================================

// APIError is the typed form of the service's error envelope. It implements
// the error interface and is used both by the server (to write HTTP
// responses) and by the SDK client (to surface failures to callers).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "invalid_credentials")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

// ============================================================================
// Predefined errors
// ============================================================================

var (
	// ErrInvalidRequest is returned for malformed bodies or missing fields.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrUnknownAuthProvider is returned when no provider matches the
	// requested id.
	ErrUnknownAuthProvider = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeUnknownAuthProvider,
		Description: "no auth provider registered under the requested id",
	}

	// ErrInvalidCredentials is returned when the provider rejects the key.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "the provider rejected the supplied credentials",
	}

	// ErrInvalidRole is returned when the requested role does not exist.
	ErrInvalidRole = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRole,
		Description: "the requested role does not exist",
	}

	// ErrPlayerNotFound is returned by lock management for unknown players.
	ErrPlayerNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodePlayerNotFound,
		Description: "no player matches the given provider identity",
	}

	// ErrInvalidSecretKey is returned when revoking a key that does not exist.
	ErrInvalidSecretKey = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeInvalidSecretKey,
		Description: "the secret key does not exist",
	}

	// ErrInvalidToken is returned when an access token fails verification.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token is missing, invalid or expired",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// ============================================================================
// Error parsing
// ============================================================================

// parseErrorResponse turns an HTTP error response into a typed *APIError.
// Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
