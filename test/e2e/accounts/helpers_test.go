package accounts_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/campuspass/internal/accounts/attempt"
	"github.com/aussiebroadwan/campuspass/internal/accounts/domain"
	httpapi "github.com/aussiebroadwan/campuspass/internal/accounts/http"
	"github.com/aussiebroadwan/campuspass/internal/accounts/notify"
	"github.com/aussiebroadwan/campuspass/internal/accounts/service"
	"github.com/aussiebroadwan/campuspass/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/campuspass/pkg/accountsdk"
	"github.com/aussiebroadwan/campuspass/pkg/cryptox"
	"github.com/aussiebroadwan/campuspass/pkg/httpx"
	"github.com/aussiebroadwan/campuspass/pkg/idx"
	"github.com/aussiebroadwan/campuspass/pkg/jwtx"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"
	"github.com/stretchr/testify/require"
)

/*
 * Common constants and helper functions for account service end-to-end
 * tests. The whole stack runs in-process against an httptest server so the
 * tests can read the recovery codes off the outbound mail queue.
 */

const (
	testIssuer   = "campuspass-test"
	testPassword = "Correct-horse-battery!"
)

// relaxedLimit keeps rapid test requests clear of the production profiles.
// The rate limit test builds its own server with a tight profile instead.
var relaxedLimit = httpx.RateLimitConfig{
	RequestsPerWindow: 1000,
	Window:            time.Minute,
	Burst:             1000,
}

// TestMain sets up a shared pepper file and relaxes the rate limit profiles
// before any routers are built.
func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "accounts-e2e-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	httpx.StrictLimit = relaxedLimit
	httpx.ModerateLimit = relaxedLimit

	os.Exit(m.Run())
}

// mailbox records outbound messages instead of delivering them.
type mailbox struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (mb *mailbox) Send(_ context.Context, msg notify.Message) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.sent = append(mb.sent, msg)
	return nil
}

// lastCode extracts the recovery code from the most recent message body.
func (mb *mailbox) lastCode(t *testing.T) string {
	t.Helper()
	mb.mu.Lock()
	defer mb.mu.Unlock()
	require.NotEmpty(t, mb.sent, "expected at least one message to have been sent")
	fields := strings.Fields(mb.sent[len(mb.sent)-1].Body)
	require.NotEmpty(t, fields)
	return fields[len(fields)-1]
}

type testEnv struct {
	client *accountsdk.Client
	server *httptest.Server
	store  *sqlite.Store
	mail   *mailbox
	signer *jwtx.EdDSASigner
}

// setupService wires the full account service against an in-memory database
// and serves it over an httptest server.
func setupService(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewEphemeralSigner("e2e-1", testIssuer)
	require.NoError(t, err)

	mail := &mailbox{}
	tracker := attempt.NewMemoryTracker(3, time.Minute)

	svc := &service.AccountService{
		Store:       st,
		Credentials: &service.CredentialService{Store: st, Tracker: tracker},
		OTP:         service.OTPEngine{},
		Notifier:    mail,
		Signer:      signer,
		Authorities: domain.DefaultAuthorities(),
		TokenTTL:    5 * time.Minute,
	}

	logger := slogx.New(slogx.Config{
		Service: "accounts-e2e",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	router := httpapi.NewRouter(signer, "test", st, logger)
	router.AccountService = svc
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{
		client: accountsdk.NewClient(server.URL),
		server: server,
		store:  st,
		mail:   mail,
		signer: signer,
	}
}

// seedProfile provisions a person record the way the enrolment import would.
func (e *testEnv) seedProfile(t *testing.T, kind domain.ProfileKind, number, email string) domain.Profile {
	t.Helper()
	p := domain.Profile{
		ID:     idx.New().String(),
		Kind:   kind,
		Number: number,
		Email:  email,
	}
	require.NoError(t, e.store.Profiles().CreateProfile(context.Background(), p))
	return p
}

// registerEmployee signs up an account against a freshly seeded employee
// record and returns the registration response.
func (e *testEnv) registerEmployee(t *testing.T, username, number, email string) *accountsdk.RegisterResponse {
	t.Helper()
	e.seedProfile(t, domain.ProfileEmployee, number, email)

	resp, err := e.client.Register(t.Context(), accountsdk.RegisterRequest{
		Username: username,
		Password: testPassword,
		Employee: &accountsdk.ProfilePayload{Number: number},
	})
	require.NoError(t, err)
	require.True(t, resp.Locked, "fresh registrations start locked")
	return resp
}

// unlock consumes the registration code so the account can log in.
func (e *testEnv) unlock(t *testing.T, username string) {
	t.Helper()
	ok, err := e.client.VerifyOTP(t.Context(), username, e.mail.lastCode(t))
	require.NoError(t, err)
	require.True(t, ok, "unlock code should verify")
}

// login authenticates and returns the response plus the bearer token from
// the Jwt-Token header.
func (e *testEnv) login(t *testing.T, username, password string) (*accountsdk.LoginResponse, string) {
	t.Helper()
	resp, token, err := e.client.Login(t.Context(), accountsdk.LoginRequest{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token, "login should return a token in the Jwt-Token header")
	return resp, token
}

// requireAPIError asserts err is an API error with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *accountsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
