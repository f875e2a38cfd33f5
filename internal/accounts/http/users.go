package http

import (
	"net/http"

	"github.com/aussiebroadwan/campuspass/internal/accounts/domain"
	"github.com/aussiebroadwan/campuspass/internal/accounts/service"
	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/aussiebroadwan/campuspass/pkg/httpx"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"
)

type ListUsersHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		List Accounts Endpoint
//	@Description	List all accounts, newest first. Requires the accounts:read
//	@Description	authority.
//	@Tags			Accounts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	accountsdk.ListUsersResponse	"users"
//	@Failure		401	{object}	accountsdk.ErrorResponse		"error, error_description"
//	@Failure		403	{string}	string							"insufficient_scope"
//	@Router			/v1/accounts [get].
func (h *ListUsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.AccountService.ListUsers(ctx)
	if err != nil {
		log.Error("failed to list accounts", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.ErrorResponse{
			Error:            accountsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list accounts",
		})
		return
	}

	out := accountsdk.ListUsersResponse{
		Users: make([]accountsdk.UserRecord, 0, len(users)),
	}
	for _, u := range users {
		out.Users = append(out.Users, userRecord(u))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

func userRecord(u domain.User) accountsdk.UserRecord {
	return accountsdk.UserRecord{
		ID:          u.ID,
		Username:    u.Username,
		Role:        string(u.Role),
		Locked:      u.Locked,
		Active:      u.Active,
		JoinedAt:    u.JoinedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
