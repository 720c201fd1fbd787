package countdown

import "time"

// FallbackWindow is the payment window assumed when the upstream reports no
// expire_seconds but the order's creation time is known.
const FallbackWindow = 15 * time.Minute

// Entry records when an order's payment window closes. ExpireAt is the only
// ground truth; LastKnownRemaining is a cached derivation refreshed by the UI
// tick and must never be trusted over the clock.
type Entry struct {
	OrderID            string    `json:"orderId"`
	ExpireAt           time.Time `json:"expireAt"`
	LastKnownRemaining int64     `json:"lastKnownRemainingSeconds"`
	LastUpdate         time.Time `json:"lastUpdateTime"`
}

// NewEntry builds an entry for an order expiring at expireAt. When the
// upstream already reported an authoritative remaining-seconds value it seeds
// the cache directly, saving a clock read; otherwise the cache is derived.
func NewEntry(orderID string, expireAt time.Time, authoritativeSeconds *int64, now time.Time) Entry {
	e := Entry{
		OrderID:    orderID,
		ExpireAt:   expireAt,
		LastUpdate: now,
	}
	if authoritativeSeconds != nil {
		e.LastKnownRemaining = *authoritativeSeconds
	} else {
		e.LastKnownRemaining = e.RemainingAt(now)
	}
	return e
}

// RemainingAt derives seconds left until expiry from the wall clock. It
// floors at zero; zero means expired, not missing.
func (e Entry) RemainingAt(now time.Time) int64 {
	remaining := e.ExpireAt.Sub(now) / time.Second
	if remaining < 0 {
		return 0
	}
	return int64(remaining)
}

// Refreshed returns a copy with the cached value recomputed at now.
func (e Entry) Refreshed(now time.Time) Entry {
	e.LastKnownRemaining = e.RemainingAt(now)
	e.LastUpdate = now
	return e
}

// Expired reports whether the payment window has closed at now.
func (e Entry) Expired(now time.Time) bool {
	return e.RemainingAt(now) == 0
}
