// Package attempt tracks consecutive failed logins per username so the
// service can lock accounts under brute force.
package attempt

import "context"

// Tracker counts failed login attempts. Implementations must be safe for
// concurrent use.
type Tracker interface {
	// RecordFailure increments the failure count for the username.
	RecordFailure(ctx context.Context, username string) error

	// Exceeded reports whether the username has reached the maximum
	// number of consecutive failures.
	Exceeded(ctx context.Context, username string) (bool, error)

	// Evict clears the failure count for the username.
	Evict(ctx context.Context, username string) error
}
