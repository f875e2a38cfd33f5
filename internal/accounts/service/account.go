package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/campuspass/internal/accounts/domain"
	"github.com/aussiebroadwan/campuspass/internal/accounts/notify"
	"github.com/aussiebroadwan/campuspass/internal/accounts/store"
	"github.com/aussiebroadwan/campuspass/pkg/cryptox"
	"github.com/aussiebroadwan/campuspass/pkg/idx"
	"github.com/aussiebroadwan/campuspass/pkg/jwtx"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"
)

var (
	ErrInvalidRegistration = errors.New("registration carries no person profile")
	ErrUsernameExists      = errors.New("username already taken")
	ErrPersonNotFound      = errors.New("no matching person record")
	ErrPersonExists        = errors.New("person record already registered")
	ErrWeakPassword        = errors.New("password must contain a special character")
)

// AccountService coordinates registration, login and the account listing.
// Recovery flows live on the same service in recovery.go.
type AccountService struct {
	Store       store.Store
	Credentials *CredentialService
	OTP         OTPEngine
	Notifier    notify.Sender
	Signer      *jwtx.EdDSASigner
	Authorities domain.AuthorityTable
	TokenTTL    time.Duration
}

// Register creates a user against a pre-existing person record. Guests are
// the exception: their profile is created from the request itself. The new
// account starts locked with a pending one-time code; the holder unlocks it
// by verifying the code sent to the profile email.
func (s *AccountService) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Exactly one profile variant must be populated. Precedence applies
	// when several are, see Registration.Resolve.
	kind, input, ok := reg.Resolve()
	if !ok {
		return domain.User{}, ErrInvalidRegistration
	}

	// 2. Password policy runs before any lookup.
	if err := cryptox.CheckPasswordStrength(reg.Password); err != nil {
		return domain.User{}, ErrWeakPassword
	}

	// 3. The username must be free.
	if _, err := s.Store.Users().GetUserByUsername(ctx, reg.Username); err == nil {
		return domain.User{}, ErrUsernameExists
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check username", slog.Any("error", err))
		return domain.User{}, err
	}

	// 4. Resolve the person record and the delivery address. Guests bring
	// their own email; everyone else must match a provisioned profile that
	// is not yet registered.
	var (
		profile domain.Profile
		email   string
	)
	if kind == domain.ProfileGuest {
		profile = domain.Profile{
			ID:     idx.New().String(),
			Kind:   kind,
			Number: input.Number,
			Email:  input.Email,
		}
		email = input.Email
	} else {
		var err error
		profile, err = s.Store.Profiles().GetProfileByNumber(ctx, kind, input.Number)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("registration against unknown person record",
					slog.String("kind", string(kind)),
					slog.String("number", input.Number),
				)
				return domain.User{}, ErrPersonNotFound
			}
			log.Error("failed to fetch profile", slog.Any("error", err))
			return domain.User{}, err
		}
		if profile.UserID != nil {
			return domain.User{}, ErrPersonExists
		}
		email = profile.Email
	}

	// 5. Issue the unlock code and dispatch it before anything is
	// persisted, so a delivery failure leaves no half-registered account.
	code, err := s.OTP.Generate()
	if err != nil {
		log.Error("failed to generate code", slog.Any("error", err))
		return domain.User{}, err
	}
	if email == "" {
		return domain.User{}, fmt.Errorf("%w: no delivery address on record", notify.ErrDeliveryFailed)
	}
	if err := s.Notifier.Send(ctx, notify.Message{
		To:      email,
		Subject: "Activate your account",
		Body:    "Your verification code is " + code,
	}); err != nil {
		log.Error("failed to send activation code", slog.Any("error", err))
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     reg.Username,
		PasswordHash: hash,
		Role:         kind.Role(),
		OTP:          &code,
		Locked:       true,
		Active:       true,
		JoinedAt:     time.Now().UTC(),
	}

	// 6. Persist user and profile linkage atomically.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUsernameExists
			}
			return err
		}
		if kind == domain.ProfileGuest {
			profile.UserID = &user.ID
			if err := tx.Profiles().CreateProfile(ctx, profile); err != nil {
				if errors.Is(err, store.ErrAlreadyExists) {
					return ErrPersonExists
				}
				return err
			}
			return nil
		}
		return tx.Profiles().LinkUser(ctx, profile.ID, user.ID)
	})
	if err != nil {
		if !errors.Is(err, ErrUsernameExists) && !errors.Is(err, ErrPersonExists) {
			log.Error("failed to persist registration", slog.Any("error", err))
		}
		return domain.User{}, err
	}

	log.Info("account registered",
		slog.String("user_id", user.ID),
		slog.String("kind", string(kind)),
	)
	return user, nil
}

// Login authenticates the credentials and mints a bearer token for the
// session. The token carries the role and its derived authorities.
func (s *AccountService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Credential check, including the lockout evaluation.
	user, err := s.Credentials.Authenticate(ctx, username, password)
	if err != nil {
		return domain.User{}, "", err
	}

	// 2. Stamp the login before minting, a failed stamp shouldn't hand out
	// a token for a write-broken store.
	if err := s.Store.Users().UpdateLastLogin(ctx, user.ID); err != nil {
		log.Error("failed to stamp last login", slog.Any("error", err))
		return domain.User{}, "", err
	}

	// 3. Mint the access token.
	claims := jwtx.NewAccessClaims(
		user.ID,
		user.Username,
		string(user.Role),
		s.Authorities.Authorities(user.Role),
		s.TokenTTL,
		s.Signer.Issuer(),
		time.Now().UTC(),
	)
	token, err := s.Signer.SignAccessToken(claims)
	if err != nil {
		log.Error("failed to sign token", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("login", slog.String("user_id", user.ID))
	return user, token, nil
}

// ListUsers returns every account, newest first.
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}
