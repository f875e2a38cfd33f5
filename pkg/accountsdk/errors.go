package accountsdk

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error codes used across the service responses.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeNotFound       = "not_found"
	ErrorCodeConflict       = "conflict"
	ErrorCodeWeakPassword   = "weak_password"
	ErrorCodeOTPMismatch    = "otp_mismatch"
	ErrorCodeInvalidGrant   = "invalid_grant"
	ErrorCodeAccountLocked  = "account_locked"
	ErrorCodeDeliveryFailed = "delivery_failed"
	ErrorCodeServerError    = "server_error"
)

// APIError is a non-2xx response decoded into the standard envelope. It
// implements the error interface so callers can inspect Code and StatusCode.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("accountsdk: %s (HTTP %d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("accountsdk: %s: %s (HTTP %d)", e.Code, e.Description, e.StatusCode)
}

// decodeAPIError reads an error envelope from a response body. Bodies that
// are not valid envelopes still produce a usable APIError.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Code: ErrorCodeServerError}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	_ = json.Unmarshal(body, apiErr)
	return apiErr
}
