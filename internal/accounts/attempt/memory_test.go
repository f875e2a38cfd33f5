package attempt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryTrackerExceeded(t *testing.T) {
	ctx := context.Background()
	tr := NewMemoryTracker(3, time.Minute)

	exceeded, err := tr.Exceeded(ctx, "alice")
	require.NoError(t, err)
	require.False(t, exceeded)

	for range 3 {
		require.NoError(t, tr.RecordFailure(ctx, "alice"))
	}

	exceeded, err = tr.Exceeded(ctx, "alice")
	require.NoError(t, err)
	require.True(t, exceeded)

	// Another user is unaffected.
	exceeded, err = tr.Exceeded(ctx, "bob")
	require.NoError(t, err)
	require.False(t, exceeded)
}

func TestMemoryTrackerEvict(t *testing.T) {
	ctx := context.Background()
	tr := NewMemoryTracker(2, time.Minute)

	require.NoError(t, tr.RecordFailure(ctx, "alice"))
	require.NoError(t, tr.RecordFailure(ctx, "alice"))

	exceeded, err := tr.Exceeded(ctx, "alice")
	require.NoError(t, err)
	require.True(t, exceeded)

	require.NoError(t, tr.Evict(ctx, "alice"))

	exceeded, err = tr.Exceeded(ctx, "alice")
	require.NoError(t, err)
	require.False(t, exceeded)
}

func TestMemoryTrackerWindowExpiry(t *testing.T) {
	ctx := context.Background()
	tr := NewMemoryTracker(2, time.Minute)

	now := time.Now()
	tr.now = func() time.Time { return now }

	require.NoError(t, tr.RecordFailure(ctx, "alice"))
	require.NoError(t, tr.RecordFailure(ctx, "alice"))

	// Advance past the window; the streak should be forgotten.
	tr.now = func() time.Time { return now.Add(2 * time.Minute) }

	exceeded, err := tr.Exceeded(ctx, "alice")
	require.NoError(t, err)
	require.False(t, exceeded)

	// A new failure starts a fresh streak, not a continuation.
	require.NoError(t, tr.RecordFailure(ctx, "alice"))
	exceeded, err = tr.Exceeded(ctx, "alice")
	require.NoError(t, err)
	require.False(t, exceeded)
}
