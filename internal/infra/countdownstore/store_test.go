//go:build unit

package countdownstore_test

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"petstay-bff/internal/infra/countdownstore"
	"petstay-bff/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.DiscardHandler)

func newTestStore(t *testing.T, clk clock.Clock) *countdownstore.Store {
	t.Helper()
	store, err := countdownstore.New(countdownstore.NewMemoryPersister(), clk, testLogger)
	require.NoError(t, err)
	return store
}

func TestRemainingIsClockDerived(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	store := newTestStore(t, clk)

	store.Set("o1", now.Add(120*time.Second), nil)

	// The clock advances 150s with no Refresh calls at all, as if the tab
	// had been suspended. Remaining is still correct: floored at zero.
	clk.Advance(150 * time.Second)
	remaining, ok := store.Remaining("o1")
	require.True(t, ok)
	assert.Equal(t, int64(0), remaining)
}

func TestSetOverwritesCompletely(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	store := newTestStore(t, clk)

	fifty := int64(50)
	ten := int64(10)
	store.Set("o1", now.Add(50*time.Second), &fifty)
	store.Set("o1", now.Add(10*time.Second), &ten)

	// Only the second expiry counts; no blending with the earlier entry.
	remaining, ok := store.Remaining("o1")
	require.True(t, ok)
	assert.Equal(t, int64(10), remaining)

	clk.Advance(10 * time.Second)
	remaining, _ = store.Remaining("o1")
	assert.Equal(t, int64(0), remaining)
}

func TestUnknownOrderIsNoneNotZero(t *testing.T) {
	store := newTestStore(t, clock.NewMockClock(time.Now()))

	_, ok := store.Remaining("missing")
	assert.False(t, ok)
}

func TestClearAndClearAll(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, clock.NewMockClock(now))

	store.Set("o1", now.Add(time.Minute), nil)
	store.Set("o2", now.Add(time.Minute), nil)

	store.Clear("o1")
	_, ok := store.Remaining("o1")
	assert.False(t, ok)
	_, ok = store.Remaining("o2")
	assert.True(t, ok)

	store.ClearAll()
	_, ok = store.Remaining("o2")
	assert.False(t, ok)
	assert.Empty(t, store.Snapshot())
}

func TestEntriesAreIndependentPerOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	store := newTestStore(t, clk)

	store.Set("o1", now.Add(30*time.Second), nil)
	store.Set("o2", now.Add(90*time.Second), nil)

	clk.Advance(60 * time.Second)

	r1, _ := store.Remaining("o1")
	r2, _ := store.Remaining("o2")
	assert.Equal(t, int64(0), r1)
	assert.Equal(t, int64(30), r2)
}

func TestBoltPersistenceRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	path := filepath.Join(t.TempDir(), "countdowns.db")

	persister, err := countdownstore.NewBoltPersister(path)
	require.NoError(t, err)

	store, err := countdownstore.New(persister, clk, testLogger)
	require.NoError(t, err)
	store.Set("o1", now.Add(120*time.Second), nil)
	require.NoError(t, persister.Close())

	// Reopen: the rehydrated store derives the same clock-based value.
	persister, err = countdownstore.NewBoltPersister(path)
	require.NoError(t, err)
	defer persister.Close()

	reopened, err := countdownstore.New(persister, clk, testLogger)
	require.NoError(t, err)

	remaining, ok := reopened.Remaining("o1")
	require.True(t, ok)
	assert.Equal(t, int64(120), remaining)

	clk.Advance(30 * time.Second)
	remaining, _ = reopened.Remaining("o1")
	assert.Equal(t, int64(90), remaining)
}
