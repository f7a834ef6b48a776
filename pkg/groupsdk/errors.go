package groupsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/kitty/pkg/httpx"
)

// Error codes returned in the "error" field.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeValidation        = "validation_error"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeConflict          = "conflict"
	ErrorCodeExpired           = "expired"
	ErrorCodeDeliveryFailed    = "delivery_failed"
	ErrorCodeServerError       = "server_error"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
)

// APIError is the error body every groups endpoint returns. It is used both
// by handlers to write errors and by the Client to report them.
type APIError struct {
	StatusCode int `json:"-"`

	Code        string `json:"error"`
	Description string `json:"error_description"`

	// Invite is set on delivery_failed: the invite was stored even though
	// the notification could not be sent.
	Invite *InviteResponse `json:"invite,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches another *APIError with the same code, so predefined errors
// work with errors.Is regardless of description.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

// WriteError writes e as the JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

// NewAPIError builds an APIError with a custom description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

var (
	ErrInvalidRequest = NewAPIError(http.StatusBadRequest, ErrorCodeInvalidRequest, "the request is malformed")
	ErrValidation     = NewAPIError(http.StatusBadRequest, ErrorCodeValidation, "validation failed")
	ErrNotFound       = NewAPIError(http.StatusNotFound, ErrorCodeNotFound, "not found")
	ErrForbidden      = NewAPIError(http.StatusForbidden, ErrorCodeForbidden, "forbidden")
	ErrConflict       = NewAPIError(http.StatusConflict, ErrorCodeConflict, "conflict")
	ErrExpired        = NewAPIError(http.StatusGone, ErrorCodeExpired, "invite has expired")
	ErrDeliveryFailed = NewAPIError(http.StatusBadGateway, ErrorCodeDeliveryFailed, "notification delivery failed")
	ErrServerError    = NewAPIError(http.StatusInternalServerError, ErrorCodeServerError, "internal server error")
)

// parseErrorResponse turns a non-success response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = ErrorCodeServerError
		apiErr.Description = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return apiErr
}
