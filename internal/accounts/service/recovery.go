package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/campuspass/internal/accounts/notify"
	"github.com/aussiebroadwan/campuspass/internal/accounts/store"
	"github.com/aussiebroadwan/campuspass/pkg/cryptox"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"
)

var ErrOTPMismatch = errors.New("one-time code does not match")

// ForgotPassword issues a fresh recovery code and mails it to the account
// holder. The code is only persisted once delivery succeeds, so a failed
// send leaves the account exactly as it was.
func (s *AccountService) ForgotPassword(ctx context.Context, username string) error {
	log := slogx.FromContext(ctx)

	// 1. The username has to exist.
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUsernameNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	// 2. Find somewhere to send the code. The linked profile with a
	// usable email wins; the store orders candidates by kind.
	profile, err := s.Store.Profiles().GetProfileByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: no delivery address on record", notify.ErrDeliveryFailed)
		}
		log.Error("failed to resolve profile", slog.Any("error", err))
		return err
	}

	// 3. Issue and dispatch, then persist.
	code, err := s.OTP.Generate()
	if err != nil {
		log.Error("failed to generate code", slog.Any("error", err))
		return err
	}
	if err := s.Notifier.Send(ctx, notify.Message{
		To:      profile.Email,
		Subject: "Password recovery code",
		Body:    "Your recovery code is " + code,
	}); err != nil {
		log.Error("failed to send recovery code", slog.Any("error", err))
		return err
	}
	if err := s.Store.Users().UpdateOTP(ctx, user.ID, code); err != nil {
		log.Error("failed to store recovery code", slog.Any("error", err))
		return err
	}

	log.Info("password recovery code issued", slog.String("user_id", user.ID))
	return nil
}

// VerifyForgotPassword consumes the recovery code and replaces the password.
// The new password is policy-checked before the code comparison so a weak
// password never burns a valid code.
func (s *AccountService) VerifyForgotPassword(ctx context.Context, username, otp, newPassword string) error {
	log := slogx.FromContext(ctx)

	// 1. Policy first.
	if err := cryptox.CheckPasswordStrength(newPassword); err != nil {
		return ErrWeakPassword
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	// 2. Compare and consume atomically so two concurrent attempts can't
	// both spend the same code.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUsernameNotFound
			}
			return err
		}
		if !s.OTP.Matches(user.OTP, otp) {
			return ErrOTPMismatch
		}
		if err := tx.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
			return err
		}
		return tx.Users().ClearOTP(ctx, user.ID)
	})
	if err != nil {
		if errors.Is(err, ErrUsernameNotFound) || errors.Is(err, ErrOTPMismatch) {
			return err
		}
		log.Error("failed to reset password", slog.Any("error", err))
		return err
	}

	log.Info("password reset", slog.String("username", username))
	return nil
}

// VerifyUnlockOTP clears the lockout when the submitted code matches. The
// outcome is a boolean, not an error: unlock attempts with a wrong code or
// unknown username simply report false.
func (s *AccountService) VerifyUnlockOTP(ctx context.Context, username, otp string) (bool, error) {
	log := slogx.FromContext(ctx)

	unlocked := false
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		if !s.OTP.Matches(user.OTP, otp) {
			return nil
		}
		if err := tx.Users().SetLocked(ctx, user.ID, false); err != nil {
			return err
		}
		if err := tx.Users().ClearOTP(ctx, user.ID); err != nil {
			return err
		}
		unlocked = true
		return nil
	})
	if err != nil {
		log.Error("failed to process unlock", slog.Any("error", err))
		return false, err
	}

	if unlocked {
		log.Info("account unlocked", slog.String("username", username))
	}
	return unlocked, nil
}

// ForgotUsername starts username recovery from an email address. The code
// goes to the address that was looked up, which proves control of the inbox
// before any rename happens.
func (s *AccountService) ForgotUsername(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	// 1. Resolve the account through the profile email.
	profile, err := s.Store.Profiles().GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUsernameNotFound
		}
		log.Error("failed to resolve profile by email", slog.Any("error", err))
		return err
	}
	if profile.UserID == nil {
		return ErrUsernameNotFound
	}
	user, err := s.Store.Users().GetUserByID(ctx, *profile.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUsernameNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	// 2. Issue, dispatch, persist.
	code, err := s.OTP.Generate()
	if err != nil {
		log.Error("failed to generate code", slog.Any("error", err))
		return err
	}
	if err := s.Notifier.Send(ctx, notify.Message{
		To:      email,
		Subject: "Username recovery code",
		Body:    "Your recovery code is " + code,
	}); err != nil {
		log.Error("failed to send recovery code", slog.Any("error", err))
		return err
	}
	if err := s.Store.Users().UpdateOTP(ctx, user.ID, code); err != nil {
		log.Error("failed to store recovery code", slog.Any("error", err))
		return err
	}

	log.Info("username recovery code issued", slog.String("user_id", user.ID))
	return nil
}

// VerifyForgotUsername consumes a recovery code and renames the matched
// account. The code itself identifies the account, so no username is taken
// as input.
func (s *AccountService) VerifyForgotUsername(ctx context.Context, otp, newUsername string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. The code identifies the account via an indexed lookup.
		user, err := tx.Users().GetUserByOTP(ctx, otp)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrOTPMismatch
			}
			return err
		}

		// 2. The desired username must not belong to someone else.
		// Renaming to the current name is a no-op, not a conflict.
		if other, err := tx.Users().GetUserByUsername(ctx, newUsername); err == nil {
			if other.ID != user.ID {
				return ErrUsernameExists
			}
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		// 3. Rename and consume the code.
		if err := tx.Users().UpdateUsername(ctx, user.ID, newUsername); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUsernameExists
			}
			return err
		}
		return tx.Users().ClearOTP(ctx, user.ID)
	})
	if err != nil {
		if errors.Is(err, ErrOTPMismatch) || errors.Is(err, ErrUsernameExists) {
			return err
		}
		log.Error("failed to rename account", slog.Any("error", err))
		return err
	}

	log.Info("username changed", slog.String("new_username", newUsername))
	return nil
}
