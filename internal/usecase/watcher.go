package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"petstay-bff/internal/pkg/config"
	"petstay-bff/internal/usecase/commands"
)

// Watcher runs the two timers behind each active payment screen: a local
// refresh tick (no I/O) and a coarser reconciliation poll against the
// upstream order status. Watches are independent per order and stop when the
// screen goes away or the countdown reaches zero.
type Watcher struct {
	commands commands.CountdownCommands
	cfg      config.CountdownConfig
	logger   *slog.Logger

	mu      sync.Mutex
	watches map[string]chan struct{}
}

func NewWatcher(cmds commands.CountdownCommands, cfg config.CountdownConfig, logger *slog.Logger) *Watcher {
	return &Watcher{
		commands: cmds,
		cfg:      cfg,
		logger:   logger,
		watches:  make(map[string]chan struct{}),
	}
}

// Watch starts the timer pair for an order. Idempotent: a second call while
// a watch is running is a no-op.
func (w *Watcher) Watch(orderID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, running := w.watches[orderID]; running {
		return
	}
	stop := make(chan struct{})
	w.watches[orderID] = stop
	go w.run(orderID, stop)
}

// Stop cancels the watch for one order. The countdown entry itself is left
// to the caller; a reconciliation already in flight cannot write back once
// the entry is cleared.
func (w *Watcher) Stop(orderID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked(orderID)
}

// StopAll cancels every watch, used on shutdown.
func (w *Watcher) StopAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for orderID := range w.watches {
		w.stopLocked(orderID)
	}
}

func (w *Watcher) stopLocked(orderID string) {
	if stop, ok := w.watches[orderID]; ok {
		close(stop)
		delete(w.watches, orderID)
	}
}

// finish removes the watch record for a run that ended on its own, unless a
// newer watch has already replaced it.
func (w *Watcher) finish(orderID string, stop chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if current, ok := w.watches[orderID]; ok && current == stop {
		delete(w.watches, orderID)
	}
}

func (w *Watcher) run(orderID string, stop chan struct{}) {
	defer w.finish(orderID, stop)

	tick := time.NewTicker(w.cfg.TickInterval)
	defer tick.Stop()
	reconcile := time.NewTicker(w.cfg.ReconcileInterval)
	defer reconcile.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			w.commands.Refresh(orderID)
		case <-reconcile.C:
			ctx, cancel := context.WithTimeout(context.Background(), w.cfg.ReconcileInterval)
			remaining, err := w.commands.Reconcile(ctx, orderID)
			cancel()
			if err != nil {
				// Non-fatal: keep showing the local countdown and retry on
				// the next poll.
				w.logger.Warn("countdown reconciliation failed", "order_id", orderID, "error", err)
				continue
			}
			if remaining <= 0 {
				w.logger.Info("countdown ended, stopping watch", "order_id", orderID)
				return
			}
		}
	}
}
