package accountsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is a typed HTTP client for the account service. It covers the
// public account endpoints plus the authenticated listing.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a sane default timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register submits a sign-up request. The created account starts locked
// until the emailed code is verified via VerifyOTP.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.postJSON(ctx, "/v1/accounts/register", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a bearer token. The token is returned
// separately from the body because it travels in the Jwt-Token header.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, string, error) {
	var out LoginResponse
	var token string
	header := func(h http.Header) { token = h.Get(JwtTokenHeader) }
	if err := c.postJSON(ctx, "/v1/accounts/login", req, &out, header); err != nil {
		return nil, "", err
	}
	return &out, token, nil
}

// ForgotPassword requests a password-recovery code for the username.
func (c *Client) ForgotPassword(ctx context.Context, username string) error {
	var out MessageResponse
	return c.postJSON(ctx, "/v1/accounts/forgot-password", ForgotPasswordRequest{Username: username}, &out, nil)
}

// VerifyForgotPassword consumes a recovery code and sets a new password.
func (c *Client) VerifyForgotPassword(ctx context.Context, req VerifyForgotPasswordRequest) error {
	var out MessageResponse
	return c.postJSON(ctx, "/v1/accounts/verify-forgot-password", req, &out, nil)
}

// VerifyOTP attempts to unlock an account with the emailed code.
func (c *Client) VerifyOTP(ctx context.Context, username, otp string) (bool, error) {
	var out VerifyOTPResponse
	err := c.postJSON(ctx, "/v1/accounts/verify-otp", VerifyOTPRequest{Username: username, OTP: otp}, &out, nil)
	if err != nil {
		return false, err
	}
	return out.Verified, nil
}

// ForgotUsername requests a username-recovery code for the email address.
func (c *Client) ForgotUsername(ctx context.Context, email string) error {
	var out MessageResponse
	return c.postJSON(ctx, "/v1/accounts/forgot-username", ForgotUsernameRequest{Email: email}, &out, nil)
}

// VerifyForgotUsername consumes a recovery code and renames the account it
// was issued for.
func (c *Client) VerifyForgotUsername(ctx context.Context, otp, newUsername string) error {
	var out MessageResponse
	req := VerifyForgotUsernameRequest{OTP: otp, NewUsername: newUsername}
	return c.postJSON(ctx, "/v1/accounts/verify-otp-forgot-username", req, &out, nil)
}

// ListUsers fetches the account listing. Requires a token holding the
// accounts:read authority.
func (c *Client) ListUsers(ctx context.Context, token string) (*ListUsersResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/accounts", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var out ListUsersResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("accountsdk: decode response: %w", err)
	}
	return &out, nil
}

// postJSON sends a JSON body and decodes a JSON response. headerFn, when
// non-nil, is called with the response headers before the body decode.
func (c *Client) postJSON(ctx context.Context, path string, in, out any, headerFn func(http.Header)) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("accountsdk: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if headerFn != nil {
		headerFn(resp.Header)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("accountsdk: decode response: %w", err)
	}
	return nil
}
