package accounts_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

func TestLoginRefusedWhileLocked(t *testing.T) {
	env := setupService(t)

	env.registerEmployee(t, "pending", "E3001", "pending@example.com")

	// Correct password, but the registration code was never verified
	_, _, err := env.client.Login(t.Context(), accountsdk.LoginRequest{
		Username: "pending",
		Password: testPassword,
	})
	requireAPIError(t, err, http.StatusLocked, accountsdk.ErrorCodeAccountLocked)
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupService(t)

	env.registerEmployee(t, "bob", "E3002", "bob@example.com")
	env.unlock(t, "bob")

	_, _, err := env.client.Login(t.Context(), accountsdk.LoginRequest{
		Username: "bob",
		Password: "Wrong-password!",
	})
	requireAPIError(t, err, http.StatusUnauthorized, accountsdk.ErrorCodeInvalidGrant)
}

func TestLoginUnknownUsername(t *testing.T) {
	env := setupService(t)

	_, _, err := env.client.Login(t.Context(), accountsdk.LoginRequest{
		Username: "nobody",
		Password: testPassword,
	})
	requireAPIError(t, err, http.StatusNotFound, accountsdk.ErrorCodeNotFound)
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	env := setupService(t)

	env.registerEmployee(t, "bruteforced", "E3003", "bf@example.com")
	env.unlock(t, "bruteforced")

	// The tracker allows 3 failures in the test window
	for range 3 {
		_, _, err := env.client.Login(t.Context(), accountsdk.LoginRequest{
			Username: "bruteforced",
			Password: "Wrong-password!",
		})
		requireAPIError(t, err, http.StatusUnauthorized, accountsdk.ErrorCodeInvalidGrant)
	}

	// Even the right password is refused once the streak trips the lock
	_, _, err := env.client.Login(t.Context(), accountsdk.LoginRequest{
		Username: "bruteforced",
		Password: testPassword,
	})
	requireAPIError(t, err, http.StatusLocked, accountsdk.ErrorCodeAccountLocked)
}

func TestLoginTokenVerifies(t *testing.T) {
	env := setupService(t)

	resp := env.registerEmployee(t, "carol", "E3004", "carol@example.com")
	env.unlock(t, "carol")
	_, token := env.login(t, "carol", testPassword)

	claims, err := env.signer.VerifyAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, resp.UserID, claims.Subject)
	require.Equal(t, "carol", claims.Username)
	require.Equal(t, "EMPLOYEE", claims.Role)
	require.Contains(t, claims.Authorities, "accounts:read")
}

func TestListUsersRequiresAuthority(t *testing.T) {
	env := setupService(t)

	// Employees hold accounts:read, guests do not
	env.registerEmployee(t, "admin", "E3005", "admin@example.com")
	env.unlock(t, "admin")

	_, err := env.client.Register(t.Context(), accountsdk.RegisterRequest{
		Username: "lurker",
		Password: testPassword,
		Guest: &accountsdk.ProfilePayload{
			Number: "G-20",
			Email:  "lurker@example.com",
		},
	})
	require.NoError(t, err)
	env.unlock(t, "lurker")

	_, adminToken := env.login(t, "admin", testPassword)
	_, guestToken := env.login(t, "lurker", testPassword)

	listing, err := env.client.ListUsers(t.Context(), adminToken)
	require.NoError(t, err)
	require.Len(t, listing.Users, 2)

	usernames := make([]string, 0, len(listing.Users))
	for _, u := range listing.Users {
		usernames = append(usernames, u.Username)
	}
	require.ElementsMatch(t, []string{"admin", "lurker"}, usernames)

	// Bearer challenges use the RFC 6750 plain responses, so only the
	// status codes are checked here
	var apiErr *accountsdk.APIError

	_, err = env.client.ListUsers(t.Context(), guestToken)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	_, err = env.client.ListUsers(t.Context(), "not-a-token")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
