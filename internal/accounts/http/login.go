package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/campuspass/internal/accounts/service"
	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/aussiebroadwan/campuspass/pkg/httpx"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"
)

type LoginHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate credentials and receive a JWT in the Jwt-Token
//	@Description	response header. Accounts locked after repeated failures must
//	@Description	be unlocked via the verify-otp endpoint first.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	accountsdk.LoginResponse	"user_id, username, role, authorities"
//	@Header			200		{string}	Jwt-Token					"Bearer access token"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		423		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/accounts/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, token, err := h.AccountService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeNotFound,
				ErrorDescription: "Username not found",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteJSON(w, http.StatusUnauthorized, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeInvalidGrant,
				ErrorDescription: "Invalid credentials",
			})
		case errors.Is(err, service.ErrAccountLocked):
			httpx.WriteJSON(w, http.StatusLocked, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeAccountLocked,
				ErrorDescription: "Account is locked, verify the emailed code to unlock",
			})
		default:
			log.Error("failed to login", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to login",
			})
		}
		return
	}

	w.Header().Set(accountsdk.JwtTokenHeader, token)
	httpx.WriteJSON(w, http.StatusOK, accountsdk.LoginResponse{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        string(user.Role),
		Authorities: h.AccountService.Authorities.Authorities(user.Role),
	})
}
