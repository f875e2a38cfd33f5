package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/campuspass/internal/accounts/domain"
	"github.com/aussiebroadwan/campuspass/internal/accounts/notify"
	"github.com/aussiebroadwan/campuspass/internal/accounts/service"
	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/aussiebroadwan/campuspass/pkg/httpx"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"
)

type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Register Account Endpoint
//	@Description	Register a new account against a provisioned person record.
//	@Description	Exactly one of employee/student/external/guest should be set;
//	@Description	guests self-register with an email in the request. The account
//	@Description	starts locked until the emailed code is verified.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.RegisterRequest	true	"Registration request"
//	@Success		201		{object}	accountsdk.RegisterResponse	"user_id, username, role, locked"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/accounts/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reg := domain.Registration{
		Username: req.Username,
		Password: req.Password,
		Employee: profileInput(req.Employee),
		Student:  profileInput(req.Student),
		External: profileInput(req.External),
		Guest:    profileInput(req.Guest),
	}

	user, err := h.AccountService.Register(ctx, reg)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRegistration):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeInvalidRequest,
				ErrorDescription: "Exactly one person profile must be provided",
			})
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeWeakPassword,
				ErrorDescription: "Password must contain at least one special character",
			})
		case errors.Is(err, service.ErrUsernameExists):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeConflict,
				ErrorDescription: "Username is already taken",
			})
		case errors.Is(err, service.ErrPersonExists):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeConflict,
				ErrorDescription: "Person record is already registered",
			})
		case errors.Is(err, service.ErrPersonNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeNotFound,
				ErrorDescription: "No matching person record",
			})
		case errors.Is(err, notify.ErrDeliveryFailed):
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeDeliveryFailed,
				ErrorDescription: "Could not deliver the verification code",
			})
		default:
			log.Error("failed to register account", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
				Error:            accountsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to register account",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		Locked:   user.Locked,
	})
}

func profileInput(p *accountsdk.ProfilePayload) *domain.ProfileInput {
	if p == nil {
		return nil
	}
	return &domain.ProfileInput{Number: p.Number, Email: p.Email}
}
