package accounts_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/campuspass/internal/accounts/domain"
	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterEmployeeLifecycle(t *testing.T) {
	env := setupService(t)

	resp := env.registerEmployee(t, "alice", "E1001", "alice@example.com")
	require.Equal(t, "alice", resp.Username)
	require.Equal(t, "EMPLOYEE", resp.Role)
	require.NotEmpty(t, resp.UserID)

	// The verification code is emailed before the account can log in
	env.unlock(t, "alice")

	login, token := env.login(t, "alice", testPassword)
	require.Equal(t, resp.UserID, login.UserID)
	require.Equal(t, "EMPLOYEE", login.Role)
	require.Contains(t, login.Authorities, "profile:read")
	require.NotEmpty(t, token)
}

func TestRegisterGuestSelfRegisters(t *testing.T) {
	env := setupService(t)

	// Guests carry their own contact email; no provisioned record needed
	resp, err := env.client.Register(t.Context(), accountsdk.RegisterRequest{
		Username: "visitor",
		Password: testPassword,
		Guest: &accountsdk.ProfilePayload{
			Number: "G-7",
			Email:  "visitor@example.com",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "GUEST", resp.Role)

	env.unlock(t, "visitor")
	login, _ := env.login(t, "visitor", testPassword)
	require.Equal(t, "GUEST", login.Role)
}

func TestRegisterUnknownPerson(t *testing.T) {
	env := setupService(t)

	_, err := env.client.Register(t.Context(), accountsdk.RegisterRequest{
		Username: "ghost",
		Password: testPassword,
		Student:  &accountsdk.ProfilePayload{Number: "S-404"},
	})
	requireAPIError(t, err, http.StatusNotFound, accountsdk.ErrorCodeNotFound)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := setupService(t)

	env.registerEmployee(t, "taken", "E2001", "one@example.com")

	env.seedProfile(t, domain.ProfileEmployee, "E2002", "two@example.com")
	_, err := env.client.Register(t.Context(), accountsdk.RegisterRequest{
		Username: "taken",
		Password: testPassword,
		Employee: &accountsdk.ProfilePayload{Number: "E2002"},
	})
	requireAPIError(t, err, http.StatusBadRequest, accountsdk.ErrorCodeConflict)
}

func TestRegisterWeakPassword(t *testing.T) {
	env := setupService(t)

	_, err := env.client.Register(t.Context(), accountsdk.RegisterRequest{
		Username: "weakling",
		Password: "OnlyLetters1",
		Guest: &accountsdk.ProfilePayload{
			Number: "G-9",
			Email:  "weak@example.com",
		},
	})
	requireAPIError(t, err, http.StatusBadRequest, accountsdk.ErrorCodeWeakPassword)
}

func TestRegisterValidationRejectsShortUsername(t *testing.T) {
	env := setupService(t)

	_, err := env.client.Register(t.Context(), accountsdk.RegisterRequest{
		Username: "ab",
		Password: testPassword,
		Guest: &accountsdk.ProfilePayload{
			Number: "G-10",
			Email:  "short@example.com",
		},
	})
	requireAPIError(t, err, http.StatusBadRequest, accountsdk.ErrorCodeInvalidRequest)
}
