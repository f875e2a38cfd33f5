package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/aussiebroadwan/campuspass/pkg/httpx"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeJSON parses and validates a JSON request body into dst. On failure
// it writes the 400 response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
			Error:            accountsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return false
	}
	if err := validate.Struct(dst); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
			Error:            accountsdk.ErrorCodeInvalidRequest,
			ErrorDescription: err.Error(),
		})
		return false
	}
	return true
}
