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

type ForgotUsernameHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Forgot Username Endpoint
//	@Description	Send a username-recovery code to the given email address,
//	@Description	provided a person record with that address is linked to an
//	@Description	account.
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.ForgotUsernameRequest	true	"Email"
//	@Success		200		{object}	accountsdk.MessageResponse			"message"
//	@Failure		404		{object}	accountsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	accountsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/accounts/forgot-username [post].
func (h *ForgotUsernameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.ForgotUsernameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.AccountService.ForgotUsername(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeNotFound,
				ErrorDescription: "No account found for that email",
			})
		case errors.Is(err, notify.ErrDeliveryFailed):
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeDeliveryFailed,
				ErrorDescription: "Could not deliver the recovery code",
			})
		default:
			log.Error("failed to start username recovery", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to start username recovery",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MessageResponse{
		Message: "Recovery code sent",
	})
}
