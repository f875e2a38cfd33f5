package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/campuspass/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Profiles() Profiles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., one-time
	// code consumption). The caller MUST call Commit() or Rollback() on the
	// returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login and every recovery flow.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByOTP returns the user whose pending one-time code equals otp.
	// Indexed lookup; replaces scanning the whole table during username
	// recovery.
	GetUserByOTP(ctx context.Context, otp string) (domain.User, error)

	// ListUsers returns all users ordered by join date (newest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists on a username collision.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateOTP replaces the pending one-time code, overwriting any earlier
	// issuance.
	UpdateOTP(ctx context.Context, userID string, otp string) error

	// ClearOTP removes the pending one-time code.
	ClearOTP(ctx context.Context, userID string) error

	// UpdatePasswordHash sets the password_hash (argon2).
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// UpdateUsername renames a user. Returns ErrAlreadyExists when the new
	// username is taken.
	UpdateUsername(ctx context.Context, userID string, username string) error

	// SetLocked flips the lockout flag.
	SetLocked(ctx context.Context, userID string, locked bool) error

	// UpdateLastLogin stamps the last successful login.
	UpdateLastLogin(ctx context.Context, userID string) error
}

type Profiles interface {
	// GetProfileByNumber fetches a profile of the given kind by its
	// domain-specific identifying number.
	GetProfileByNumber(ctx context.Context, kind domain.ProfileKind, number string) (domain.Profile, error)

	// GetProfileByEmail fetches any profile carrying the given email,
	// regardless of kind.
	GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error)

	// GetProfileByUserID fetches the profile linked to a user. Lookup order
	// across kinds is student, employee, external, guest; the first profile
	// with a non-empty email wins.
	GetProfileByUserID(ctx context.Context, userID string) (domain.Profile, error)

	// CreateProfile inserts a new profile (guests self-register; other kinds
	// are provisioned out of band). Returns ErrAlreadyExists on a
	// kind+number collision.
	CreateProfile(ctx context.Context, p domain.Profile) error

	// LinkUser points a profile at its owning user.
	LinkUser(ctx context.Context, profileID string, userID string) error
}
