package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/campuspass/internal/accounts/notify"
	"github.com/aussiebroadwan/campuspass/internal/accounts/service"
	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/aussiebroadwan/campuspass/pkg/httpx"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"
)

type ForgotPasswordHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Forgot Password Endpoint
//	@Description	Send a password-recovery code to the email on the account's
//	@Description	linked person record.
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.ForgotPasswordRequest	true	"Username"
//	@Success		200		{object}	accountsdk.MessageResponse			"message"
//	@Failure		404		{object}	accountsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	accountsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/accounts/forgot-password [post].
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.ForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.AccountService.ForgotPassword(ctx, req.Username); err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeNotFound,
				ErrorDescription: "Username not found",
			})
		case errors.Is(err, notify.ErrDeliveryFailed):
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeDeliveryFailed,
				ErrorDescription: "Could not deliver the recovery code",
			})
		default:
			log.Error("failed to start password recovery", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to start password recovery",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{
		Message: "Recovery code sent",
	})
}
