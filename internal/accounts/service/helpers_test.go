package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/campuspass/internal/accounts/attempt"
	"github.com/aussiebroadwan/campuspass/internal/accounts/domain"
	"github.com/aussiebroadwan/campuspass/internal/accounts/notify"
	"github.com/aussiebroadwan/campuspass/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/campuspass/pkg/cryptox"
	"github.com/aussiebroadwan/campuspass/pkg/idx"
	"github.com/aussiebroadwan/campuspass/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Set up a temporary pepper file for testing
	pepperPath := filepath.Join(os.TempDir(), "accounts-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// captureSender records messages instead of sending them. Set fail to make
// every Send report a delivery failure.
type captureSender struct {
	mu   sync.Mutex
	sent []notify.Message
	fail bool
}

func (c *captureSender) Send(_ context.Context, msg notify.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return fmt.Errorf("%w: relay down", notify.ErrDeliveryFailed)
	}
	c.sent = append(c.sent, msg)
	return nil
}

func (c *captureSender) last(t *testing.T) notify.Message {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.sent, "expected at least one message to have been sent")
	return c.sent[len(c.sent)-1]
}

// lastCode extracts the recovery code from the most recent message body.
func (c *captureSender) lastCode(t *testing.T) string {
	t.Helper()
	fields := strings.Fields(c.last(t).Body)
	require.NotEmpty(t, fields)
	return fields[len(fields)-1]
}

type fixture struct {
	svc     *AccountService
	store   *sqlite.Store
	sender  *captureSender
	tracker *attempt.MemoryTracker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewEphemeralSigner("test-1", "test-issuer")
	require.NoError(t, err)

	sender := &captureSender{}
	tracker := attempt.NewMemoryTracker(3, time.Minute)

	svc := &AccountService{
		Store:       st,
		Credentials: &CredentialService{Store: st, Tracker: tracker},
		OTP:         OTPEngine{},
		Notifier:    sender,
		Signer:      signer,
		Authorities: domain.DefaultAuthorities(),
		TokenTTL:    time.Minute,
	}

	return &fixture{svc: svc, store: st, sender: sender, tracker: tracker}
}

// seedProfile provisions a person record the way the enrolment import would.
func (f *fixture) seedProfile(t *testing.T, kind domain.ProfileKind, number, email string) domain.Profile {
	t.Helper()
	p := domain.Profile{
		ID:     idx.New().String(),
		Kind:   kind,
		Number: number,
		Email:  email,
	}
	require.NoError(t, f.store.Profiles().CreateProfile(context.Background(), p))
	return p
}

// registerEmployee runs a full registration against a seeded employee record.
func (f *fixture) registerEmployee(t *testing.T, username, password, number, email string) domain.User {
	t.Helper()
	f.seedProfile(t, domain.ProfileEmployee, number, email)
	user, err := f.svc.Register(context.Background(), domain.Registration{
		Username: username,
		Password: password,
		Employee: &domain.ProfileInput{Number: number},
	})
	require.NoError(t, err)
	return user
}

// unlock consumes the registration code so the account can log in.
func (f *fixture) unlock(t *testing.T, username string) {
	t.Helper()
	ok, err := f.svc.VerifyUnlockOTP(context.Background(), username, f.sender.lastCode(t))
	require.NoError(t, err)
	require.True(t, ok)
}
