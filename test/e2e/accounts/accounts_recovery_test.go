package accounts_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

func TestForgotPasswordFlow(t *testing.T) {
	env := setupService(t)

	env.registerEmployee(t, "dave", "E4001", "dave@example.com")
	env.unlock(t, "dave")

	require.NoError(t, env.client.ForgotPassword(t.Context(), "dave"))
	code := env.mail.lastCode(t)

	const newPassword = "Brand-new-secret!"
	require.NoError(t, env.client.VerifyForgotPassword(t.Context(), accountsdk.VerifyForgotPasswordRequest{
		Username:    "dave",
		OTP:         code,
		NewPassword: newPassword,
	}))

	// Old password no longer works, new one does
	_, _, err := env.client.Login(t.Context(), accountsdk.LoginRequest{
		Username: "dave",
		Password: testPassword,
	})
	requireAPIError(t, err, http.StatusUnauthorized, accountsdk.ErrorCodeInvalidGrant)

	env.login(t, "dave", newPassword)

	// The code is single use
	err = env.client.VerifyForgotPassword(t.Context(), accountsdk.VerifyForgotPasswordRequest{
		Username:    "dave",
		OTP:         code,
		NewPassword: "Another-one-2!",
	})
	requireAPIError(t, err, http.StatusBadRequest, accountsdk.ErrorCodeOTPMismatch)
}

func TestForgotPasswordUnknownUsername(t *testing.T) {
	env := setupService(t)

	err := env.client.ForgotPassword(t.Context(), "nobody")
	requireAPIError(t, err, http.StatusNotFound, accountsdk.ErrorCodeNotFound)
}

func TestVerifyForgotPasswordRejectsWeakReplacement(t *testing.T) {
	env := setupService(t)

	env.registerEmployee(t, "erin", "E4002", "erin@example.com")
	env.unlock(t, "erin")
	require.NoError(t, env.client.ForgotPassword(t.Context(), "erin"))

	err := env.client.VerifyForgotPassword(t.Context(), accountsdk.VerifyForgotPasswordRequest{
		Username:    "erin",
		OTP:         env.mail.lastCode(t),
		NewPassword: "OnlyLetters1",
	})
	requireAPIError(t, err, http.StatusBadRequest, accountsdk.ErrorCodeWeakPassword)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	env := setupService(t)

	env.registerEmployee(t, "frank", "E4003", "frank@example.com")

	// A wrong code is not an error at this endpoint, just verified=false
	ok, err := env.client.VerifyOTP(t.Context(), "frank", "WRONGCODE1")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = env.client.VerifyOTP(t.Context(), "nobody", "WRONGCODE1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestForgotUsernameFlow(t *testing.T) {
	env := setupService(t)

	env.registerEmployee(t, "oldname", "E4004", "grace@example.com")
	env.unlock(t, "oldname")

	require.NoError(t, env.client.ForgotUsername(t.Context(), "grace@example.com"))
	code := env.mail.lastCode(t)

	require.NoError(t, env.client.VerifyForgotUsername(t.Context(), code, "newname"))

	// The account answers to the new username now
	env.login(t, "newname", testPassword)
	_, _, err := env.client.Login(t.Context(), accountsdk.LoginRequest{
		Username: "oldname",
		Password: testPassword,
	})
	requireAPIError(t, err, http.StatusNotFound, accountsdk.ErrorCodeNotFound)
}

func TestForgotUsernameUnknownEmail(t *testing.T) {
	env := setupService(t)

	err := env.client.ForgotUsername(t.Context(), "nobody@example.com")
	requireAPIError(t, err, http.StatusNotFound, accountsdk.ErrorCodeNotFound)
}

func TestVerifyForgotUsernameTakenName(t *testing.T) {
	env := setupService(t)

	env.registerEmployee(t, "holder", "E4005", "holder@example.com")
	env.registerEmployee(t, "mover", "E4006", "mover@example.com")
	env.unlock(t, "mover")

	require.NoError(t, env.client.ForgotUsername(t.Context(), "mover@example.com"))

	err := env.client.VerifyForgotUsername(t.Context(), env.mail.lastCode(t), "holder")
	requireAPIError(t, err, http.StatusBadRequest, accountsdk.ErrorCodeConflict)
}
