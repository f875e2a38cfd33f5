package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/campuspass/internal/accounts/service"
	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/aussiebroadwan/campuspass/pkg/httpx"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"
)

type VerifyForgotUsernameHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Verify Forgot Username Endpoint
//	@Description	Consume a username-recovery code and rename the account it
//	@Description	was issued for.
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.VerifyForgotUsernameRequest	true	"Code and desired username"
//	@Success		200		{object}	accountsdk.MessageResponse				"message"
//	@Failure		400		{object}	accountsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/accounts/verify-otp-forgot-username [post].
func (h *VerifyForgotUsernameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.VerifyForgotUsernameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.AccountService.VerifyForgotUsername(ctx, req.OTP, req.NewUsername); err != nil {
		switch {
		case errors.Is(err, service.ErrOTPMismatch):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeOTPMismatch,
				ErrorDescription: "Recovery code does not match",
			})
		case errors.Is(err, service.ErrUsernameExists):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeConflict,
				ErrorDescription: "Username is already taken",
			})
		default:
			log.Error("failed to rename account", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to change username",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{
		Message: "Username updated",
	})
}
