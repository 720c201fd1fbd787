package queries

import (
	"sort"
	"time"

	"petstay-bff/internal/domain/countdown"
	"petstay-bff/internal/pkg/clock"
)

// CountdownView is the read model for one tracked order.
type CountdownView struct {
	OrderID          string
	RemainingSeconds int64
	ExpireAt         string
}

// CountdownReader is the read-side port onto the countdown store.
type CountdownReader interface {
	Remaining(orderID string) (int64, bool)
	Snapshot() map[string]countdown.Entry
}

type CountdownQueries interface {
	// Remaining returns the live remaining seconds; ok is false for an
	// untracked order, which callers must treat as unknown, not zero.
	Remaining(orderID string) (remaining int64, ok bool)
	// List returns all tracked countdowns, for order-list views.
	List() []CountdownView
}

type countdownQueriesImpl struct {
	store CountdownReader
	clock clock.Clock
}

func NewCountdownQueries(store CountdownReader, clk clock.Clock) CountdownQueries {
	return &countdownQueriesImpl{store: store, clock: clk}
}

func (q *countdownQueriesImpl) Remaining(orderID string) (int64, bool) {
	return q.store.Remaining(orderID)
}

func (q *countdownQueriesImpl) List() []CountdownView {
	now := q.clock.Now()
	entries := q.store.Snapshot()

	views := make([]CountdownView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, CountdownView{
			OrderID:          entry.OrderID,
			RemainingSeconds: entry.RemainingAt(now),
			ExpireAt:         entry.ExpireAt.Format(time.RFC3339),
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].OrderID < views[j].OrderID })
	return views
}
