package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/campuspass/internal/accounts/service"
	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/aussiebroadwan/campuspass/pkg/httpx"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"
)

type VerifyForgotPasswordHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Verify Forgot Password Endpoint
//	@Description	Consume a password-recovery code and set a new password. The
//	@Description	new password is policy-checked before the code is compared, so
//	@Description	a weak password does not burn a valid code.
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.VerifyForgotPasswordRequest	true	"Username, code and new password"
//	@Success		200		{object}	accountsdk.MessageResponse				"message"
//	@Failure		400		{object}	accountsdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	accountsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/accounts/verify-forgot-password [post].
func (h *VerifyForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.VerifyForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.AccountService.VerifyForgotPassword(ctx, req.Username, req.OTP, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeWeakPassword,
				ErrorDescription: "Password must contain at least one special character",
			})
		case errors.Is(err, service.ErrUsernameNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeNotFound,
				ErrorDescription: "Username not found",
			})
		case errors.Is(err, service.ErrOTPMismatch):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeOTPMismatch,
				ErrorDescription: "Recovery code does not match",
			})
		default:
			log.Error("failed to reset password", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to reset password",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{
		Message: "Password updated",
	})
}
