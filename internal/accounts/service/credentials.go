package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/campuspass/internal/accounts/attempt"
	"github.com/aussiebroadwan/campuspass/internal/accounts/domain"
	"github.com/aussiebroadwan/campuspass/internal/accounts/store"
	"github.com/aussiebroadwan/campuspass/pkg/cryptox"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"
)

var (
	ErrUsernameNotFound   = errors.New("username not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked")
)

// CredentialService validates username/password pairs and applies the
// lockout rules on top of the attempt tracker.
type CredentialService struct {
	Store   store.Store
	Tracker attempt.Tracker
}

// Authenticate verifies the credentials and returns the matched user.
// Lockout state is only re-evaluated after the password check succeeds;
// failed attempts are counted on the tracker and consulted here.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Look up the user. An unknown username is reported as such, not
	// folded into the credential failure.
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUsernameNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	// 2. Verify the password. Failures feed the tracker so repeated
	// guessing eventually trips the lock.
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if err := s.Tracker.RecordFailure(ctx, username); err != nil {
			log.Error("failed to record login failure", slog.Any("error", err))
		}
		return domain.User{}, ErrInvalidCredentials
	}

	// 3. Already locked: reset the counter so the streak doesn't outlive
	// the lock, then refuse. Unlocking goes through OTP verification.
	if user.Locked {
		if err := s.Tracker.Evict(ctx, username); err != nil {
			log.Error("failed to evict attempt counter", slog.Any("error", err))
		}
		return domain.User{}, ErrAccountLocked
	}

	// 4. Not locked: lock the account now if the failure streak crossed
	// the threshold before this successful check.
	exceeded, err := s.Tracker.Exceeded(ctx, username)
	if err != nil {
		log.Error("failed to consult attempt tracker", slog.Any("error", err))
		return domain.User{}, err
	}
	if exceeded {
		if err := s.Store.Users().SetLocked(ctx, user.ID, true); err != nil {
			log.Error("failed to lock account", slog.Any("error", err))
			return domain.User{}, err
		}
		log.Warn("account locked after repeated failures", slog.String("username", username))
		return domain.User{}, ErrAccountLocked
	}

	return user, nil
}
