package http

import (
	"net/http"

	"github.com/aussiebroadwan/campuspass/internal/accounts/service"
	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/aussiebroadwan/campuspass/pkg/httpx"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"
)

type VerifyOTPHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Verify OTP Endpoint
//	@Description	Unlock an account with the emailed code. The outcome is a
//	@Description	boolean; a wrong code or unknown username reports verified=false
//	@Description	rather than an error.
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.VerifyOTPRequest		true	"Username and code"
//	@Success		200		{object}	accountsdk.VerifyOTPResponse	"verified"
//	@Failure		400		{object}	accountsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/accounts/verify-otp [post].
func (h *VerifyOTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.VerifyOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	verified, err := h.AccountService.VerifyUnlockOTP(ctx, req.Username, req.OTP)
	if err != nil {
		log.Error("failed to verify unlock code", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
			Error:            accountsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to verify code",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.VerifyOTPResponse{
		Verified: verified,
	})
}
