package accounts_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/aussiebroadwan/campuspass/pkg/httpx"
	"github.com/stretchr/testify/require"
)

// TestLoginRateLimited restores a tight strict profile for one server so the
// limiter actually trips. Routers capture the profile when routes are
// registered, so the other tests are unaffected.
func TestLoginRateLimited(t *testing.T) {
	saved := httpx.StrictLimit
	httpx.StrictLimit = httpx.RateLimitConfig{
		RequestsPerWindow: 3,
		Window:            time.Minute,
		Burst:             3,
	}
	t.Cleanup(func() { httpx.StrictLimit = saved })

	env := setupService(t)

	var apiErr *accountsdk.APIError
	limited := false
	for range 5 {
		_, _, err := env.client.Login(t.Context(), accountsdk.LoginRequest{
			Username: "nobody",
			Password: "Wrong-password!",
		})
		require.Error(t, err)
		require.ErrorAs(t, err, &apiErr)
		if apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
			require.Equal(t, "rate_limit_exceeded", apiErr.Code)
			break
		}
	}
	require.True(t, limited, "expected a 429 within 5 rapid logins")
}

// TestRateLimitKeyedByUsername checks the login limiter keys on IP plus the
// submitted username, so one noisy username does not starve another.
func TestRateLimitKeyedByUsername(t *testing.T) {
	saved := httpx.StrictLimit
	httpx.StrictLimit = httpx.RateLimitConfig{
		RequestsPerWindow: 3,
		Window:            time.Minute,
		Burst:             3,
	}
	t.Cleanup(func() { httpx.StrictLimit = saved })

	env := setupService(t)

	// Exhaust the bucket for one username
	for range 4 {
		_, _, _ = env.client.Login(t.Context(), accountsdk.LoginRequest{
			Username: "noisy",
			Password: "Wrong-password!",
		})
	}

	// A different username from the same client still gets through to the
	// handler (and fails on credentials, not on the limiter)
	_, _, err := env.client.Login(t.Context(), accountsdk.LoginRequest{
		Username: "quiet",
		Password: "Wrong-password!",
	})
	requireAPIError(t, err, http.StatusNotFound, accountsdk.ErrorCodeNotFound)
}
