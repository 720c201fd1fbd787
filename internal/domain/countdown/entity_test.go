//go:build unit

package countdown_test

import (
	"testing"
	"time"

	"petstay-bff/internal/domain/countdown"

	"github.com/stretchr/testify/assert"
)

func TestEntryRemainingAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entry := countdown.NewEntry("o1", now.Add(120*time.Second), nil, now)

	assert.Equal(t, int64(120), entry.RemainingAt(now))
	assert.Equal(t, int64(90), entry.RemainingAt(now.Add(30*time.Second)))

	// Floors at zero once past expiry; zero means expired, not an error.
	assert.Equal(t, int64(0), entry.RemainingAt(now.Add(150*time.Second)))
	assert.True(t, entry.Expired(now.Add(150*time.Second)))

	// Sub-second precision truncates downward.
	assert.Equal(t, int64(119), entry.RemainingAt(now.Add(500*time.Millisecond)))
}

func TestNewEntrySeedsCacheFromAuthoritativeSeconds(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seconds := int64(50)

	entry := countdown.NewEntry("o1", now.Add(2*time.Minute), &seconds, now)
	assert.Equal(t, int64(50), entry.LastKnownRemaining)

	derived := countdown.NewEntry("o1", now.Add(2*time.Minute), nil, now)
	assert.Equal(t, int64(120), derived.LastKnownRemaining)
}

func TestEntryRefreshed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entry := countdown.NewEntry("o1", now.Add(time.Minute), nil, now)

	later := now.Add(40 * time.Second)
	refreshed := entry.Refreshed(later)

	assert.Equal(t, int64(20), refreshed.LastKnownRemaining)
	assert.Equal(t, later, refreshed.LastUpdate)
	// The original is untouched; Refreshed is a value copy.
	assert.Equal(t, int64(60), entry.LastKnownRemaining)
}
