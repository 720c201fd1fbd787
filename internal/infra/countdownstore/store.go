package countdownstore

import (
	"log/slog"
	"sync"
	"time"

	"petstay-bff/internal/domain/countdown"
	"petstay-bff/internal/pkg/clock"
)

// Persister is the durable backend behind the store. The store writes through
// on every mutation and rehydrates from Load on startup, so a process restart
// (the service analog of a page reload) keeps every countdown alive.
type Persister interface {
	Load() (map[string]countdown.Entry, error)
	Put(entry countdown.Entry) error
	Delete(orderID string) error
	DeleteAll() error
	Close() error
}

// Store is the keyed countdown state. Entries are independent per orderId;
// the mutex only serializes map access, there is no cross-order coordination.
type Store struct {
	mu        sync.Mutex
	entries   map[string]countdown.Entry
	persister Persister
	clock     clock.Clock
	logger    *slog.Logger
}

func New(persister Persister, clk clock.Clock, logger *slog.Logger) (*Store, error) {
	entries, err := persister.Load()
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make(map[string]countdown.Entry)
	}
	return &Store{
		entries:   entries,
		persister: persister,
		clock:     clk,
		logger:    logger,
	}, nil
}

// Set inserts or overwrites the countdown for an order. Overwriting is the
// reconciliation mechanism: last writer wins, no merging.
func (s *Store) Set(orderID string, expireAt time.Time, authoritativeSeconds *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := countdown.NewEntry(orderID, expireAt, authoritativeSeconds, s.clock.Now())
	s.entries[orderID] = entry
	s.persist(entry)
}

// SetIfPresent overwrites the countdown only when the order is still being
// tracked. Reconciliation polls land through here so a response that arrives
// after Clear cannot resurrect the entry.
func (s *Store) SetIfPresent(orderID string, expireAt time.Time, authoritativeSeconds *int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[orderID]; !ok {
		return false
	}
	entry := countdown.NewEntry(orderID, expireAt, authoritativeSeconds, s.clock.Now())
	s.entries[orderID] = entry
	s.persist(entry)
	return true
}

// Remaining derives the live remaining seconds for an order. The second
// return value distinguishes "unknown order" from an expired (zero) one.
// It always recomputes from ExpireAt so a suspended timer cannot leave a
// stale value behind.
func (s *Store) Remaining(orderID string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[orderID]
	if !ok {
		return 0, false
	}
	return entry.RemainingAt(s.clock.Now()), true
}

// Refresh recomputes the cached value from ExpireAt. The per-second UI tick
// calls this to publish an updated snapshot; reads never depend on it.
func (s *Store) Refresh(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[orderID]
	if !ok {
		return
	}
	entry = entry.Refreshed(s.clock.Now())
	s.entries[orderID] = entry
	s.persist(entry)
}

// Clear removes one order's countdown, e.g. when it leaves the
// awaiting-payment state.
func (s *Store) Clear(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, orderID)
	if err := s.persister.Delete(orderID); err != nil {
		s.logger.Warn("failed to delete persisted countdown", "order_id", orderID, "error", err)
	}
}

// ClearAll drops every countdown.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]countdown.Entry)
	if err := s.persister.DeleteAll(); err != nil {
		s.logger.Warn("failed to clear persisted countdowns", "error", err)
	}
}

// Snapshot returns a copy of all entries, for list views.
func (s *Store) Snapshot() map[string]countdown.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]countdown.Entry, len(s.entries))
	for id, entry := range s.entries {
		out[id] = entry
	}
	return out
}

// persist is best-effort write-through: a failed write keeps the in-memory
// state authoritative for this process and only costs durability.
func (s *Store) persist(entry countdown.Entry) {
	if err := s.persister.Put(entry); err != nil {
		s.logger.Warn("failed to persist countdown", "order_id", entry.OrderID, "error", err)
	}
}
