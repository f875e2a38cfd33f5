package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/campuspass/internal/accounts/domain"
	"github.com/aussiebroadwan/campuspass/internal/accounts/notify"
	"github.com/aussiebroadwan/campuspass/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestForgotPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.registerEmployee(t, "erin", "str0ng-pass!", "E1001", "erin@example.edu")
	f.unlock(t, "erin")

	require.NoError(t, f.svc.ForgotPassword(ctx, "erin"))

	// The persisted code matches the mailed one.
	stored, err := f.store.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.OTP)
	require.Equal(t, *stored.OTP, f.sender.lastCode(t))
	require.Equal(t, "erin@example.edu", f.sender.last(t).To)
}

func TestForgotPasswordUnknownUsername(t *testing.T) {
	f := newFixture(t)
	err := f.svc.ForgotPassword(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrUsernameNotFound)
}

func TestForgotPasswordNoDeliveryAddress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.registerEmployee(t, "erin", "str0ng-pass!", "E1001", "erin@example.edu")
	f.unlock(t, "erin")

	// Delivery failure must leave the account untouched: no new code.
	f.sender.fail = true
	err := f.svc.ForgotPassword(ctx, "erin")
	require.ErrorIs(t, err, notify.ErrDeliveryFailed)

	stored, err := f.store.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, stored.OTP)
}

func TestVerifyForgotPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.registerEmployee(t, "erin", "str0ng-pass!", "E1001", "erin@example.edu")
	f.unlock(t, "erin")

	require.NoError(t, f.svc.ForgotPassword(ctx, "erin"))
	code := f.sender.lastCode(t)

	// Weak replacement is rejected before the code comparison, keeping the
	// code valid for a second attempt.
	err := f.svc.VerifyForgotPassword(ctx, "erin", code, "alphanumericOnly123")
	require.ErrorIs(t, err, ErrWeakPassword)

	// Wrong code does not burn anything either.
	err = f.svc.VerifyForgotPassword(ctx, "erin", "WRONGCODE1", "n3w-pass-w0rd!")
	require.ErrorIs(t, err, ErrOTPMismatch)

	require.NoError(t, f.svc.VerifyForgotPassword(ctx, "erin", code, "n3w-pass-w0rd!"))

	// The stored record was updated: new hash verifies, code consumed.
	stored, err := f.store.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, stored.OTP)
	require.NoError(t, cryptox.VerifyPassword("n3w-pass-w0rd!", stored.PasswordHash))
	require.Error(t, cryptox.VerifyPassword("str0ng-pass!", stored.PasswordHash))

	// The code is single use.
	err = f.svc.VerifyForgotPassword(ctx, "erin", code, "an0ther-pass!")
	require.ErrorIs(t, err, ErrOTPMismatch)
}

func TestVerifyUnlockOTP(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.registerEmployee(t, "erin", "str0ng-pass!", "E1001", "erin@example.edu")

	require.NoError(t, f.store.Users().UpdateOTP(ctx, user.ID, "AB12CD34EF"))

	// Wrong code: no state change, boolean false, no error.
	ok, err := f.svc.VerifyUnlockOTP(ctx, "erin", "WRONGCODE1")
	require.NoError(t, err)
	require.False(t, ok)

	stored, err := f.store.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, stored.Locked)
	require.NotNil(t, stored.OTP)
	require.Equal(t, "AB12CD34EF", *stored.OTP)

	// Correct code unlocks and consumes.
	ok, err = f.svc.VerifyUnlockOTP(ctx, "erin", "AB12CD34EF")
	require.NoError(t, err)
	require.True(t, ok)

	stored, err = f.store.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, stored.Locked)
	require.Nil(t, stored.OTP)

	// Replaying the consumed code always fails.
	ok, err = f.svc.VerifyUnlockOTP(ctx, "erin", "AB12CD34EF")
	require.NoError(t, err)
	require.False(t, ok)

	// Unknown usernames report false rather than erroring.
	ok, err = f.svc.VerifyUnlockOTP(ctx, "ghost", "AB12CD34EF")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestForgotUsername(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.registerEmployee(t, "erin", "str0ng-pass!", "E1001", "erin@example.edu")
	f.unlock(t, "erin")

	require.NoError(t, f.svc.ForgotUsername(ctx, "erin@example.edu"))

	stored, err := f.store.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.OTP)
	require.Equal(t, *stored.OTP, f.sender.lastCode(t))

	err = f.svc.ForgotUsername(ctx, "unknown@example.com")
	require.ErrorIs(t, err, ErrUsernameNotFound)

	// A seeded record with no linked account cannot start recovery.
	f.seedProfile(t, domain.ProfileStudent, "S2001", "orphan@example.edu")
	err = f.svc.ForgotUsername(ctx, "orphan@example.edu")
	require.ErrorIs(t, err, ErrUsernameNotFound)
}

func TestVerifyForgotUsername(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.registerEmployee(t, "alice", "str0ng-pass!", "E1001", "alice@example.edu")
	bob := f.registerEmployee(t, "bob", "str0ng-pass!", "E1002", "bob@example.edu")

	require.NoError(t, f.store.Users().UpdateOTP(ctx, alice.ID, "X1X1X1X1X1"))
	require.NoError(t, f.store.Users().UpdateOTP(ctx, bob.ID, "X2X2X2X2X2"))

	// Taken username: rejected, nobody renamed, code still pending.
	err := f.svc.VerifyForgotUsername(ctx, "X1X1X1X1X1", "bob")
	require.ErrorIs(t, err, ErrUsernameExists)

	storedAlice, err := f.store.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", storedAlice.Username)
	require.NotNil(t, storedAlice.OTP)

	// Unknown code is a mismatch.
	err = f.svc.VerifyForgotUsername(ctx, "NOSUCHCODE", "alicia")
	require.ErrorIs(t, err, ErrOTPMismatch)

	// The code picks the account; alice becomes alicia, bob untouched.
	require.NoError(t, f.svc.VerifyForgotUsername(ctx, "X1X1X1X1X1", "alicia"))

	storedAlice, err = f.store.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alicia", storedAlice.Username)
	require.Nil(t, storedAlice.OTP)

	storedBob, err := f.store.Users().GetUserByID(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, "bob", storedBob.Username)
	require.NotNil(t, storedBob.OTP)
	require.Equal(t, "X2X2X2X2X2", *storedBob.OTP)
}

func TestOTPEngine(t *testing.T) {
	var engine OTPEngine

	code, err := engine.Generate()
	require.NoError(t, err)
	require.Len(t, code, OTPLength)
	for _, r := range code {
		require.True(t, (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'), "unexpected character %q", r)
	}

	require.True(t, engine.Matches(&code, code))
	require.False(t, engine.Matches(&code, "WRONGCODE1"))
	require.False(t, engine.Matches(nil, code))
	require.False(t, engine.Matches(&code, ""))
}
