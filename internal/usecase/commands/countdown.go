package commands

import (
	"context"
	"log/slog"
	"time"

	"petstay-bff/internal/domain/countdown"
	"petstay-bff/internal/infra/upstream"
	"petstay-bff/internal/pkg/clock"
	"petstay-bff/internal/pkg/errs"
)

var (
	ErrUnknownExpiry = errs.New("order expiry cannot be determined")

	// Error marker for categorization
	ErrUpstreamFailed = errs.New("upstream order status query failed")
)

// CountdownStore is the write-side port onto the persisted countdown state.
type CountdownStore interface {
	Set(orderID string, expireAt time.Time, authoritativeSeconds *int64)
	SetIfPresent(orderID string, expireAt time.Time, authoritativeSeconds *int64) bool
	Remaining(orderID string) (int64, bool)
	Refresh(orderID string)
	Clear(orderID string)
	ClearAll()
}

// ArmRequest carries what the payment screen knows from the order-create or
// order-fetch payload. Either field may be absent.
type ArmRequest struct {
	OrderID       string
	ExpireSeconds *int64
	CreateTime    *time.Time
}

type CountdownCommands interface {
	// Arm establishes the countdown when a payment screen opens and returns
	// the remaining seconds.
	Arm(ctx context.Context, req ArmRequest) (int64, error)
	// Reconcile runs one poll step against the upstream order status and
	// returns the corrected remaining seconds.
	Reconcile(ctx context.Context, orderID string) (int64, error)
	// Refresh recomputes the cached remaining value (the 1s tick, no I/O).
	Refresh(orderID string)
	Clear(orderID string)
	ClearAll()
}

type countdownUseCaseImpl struct {
	store    CountdownStore
	statuses upstream.OrderStatusClient
	clock    clock.Clock
	window   time.Duration
	logger   *slog.Logger
}

func NewCountdownUseCase(
	store CountdownStore,
	statuses upstream.OrderStatusClient,
	clk clock.Clock,
	fallbackWindow time.Duration,
	logger *slog.Logger,
) CountdownCommands {
	if fallbackWindow <= 0 {
		fallbackWindow = countdown.FallbackWindow
	}
	return &countdownUseCaseImpl{
		store:    store,
		statuses: statuses,
		clock:    clk,
		window:   fallbackWindow,
		logger:   logger,
	}
}

// Arm trusts a live local countdown, otherwise asks the upstream once, and
// only then falls back to what the caller's payload carried. The priority
// order matches the payment screen of the web client this service fronts.
func (uc *countdownUseCaseImpl) Arm(ctx context.Context, req ArmRequest) (int64, error) {
	if remaining, ok := uc.store.Remaining(req.OrderID); ok && remaining > 0 {
		return remaining, nil
	}

	status, err := uc.statuses.OrderStatus(ctx, req.OrderID)
	if err != nil {
		uc.logger.Warn("order status query failed while arming, using caller payload",
			"order_id", req.OrderID, "error", err)
		return uc.armFromPayload(req)
	}

	if !status.AwaitingPayment() {
		// Terminal state: record an already-expired countdown so reads see
		// 0 ("expired"), not none ("unknown").
		uc.store.Set(req.OrderID, uc.clock.Now(), nil)
		return 0, nil
	}

	if status.ExpireSeconds != nil && *status.ExpireSeconds > 0 {
		seconds := *status.ExpireSeconds
		expireAt := uc.clock.Now().Add(time.Duration(seconds) * time.Second)
		uc.store.Set(req.OrderID, expireAt, &seconds)
		return seconds, nil
	}

	if status.CreateTime != nil {
		return uc.armFromCreateTime(req.OrderID, *status.CreateTime), nil
	}

	return uc.armFromPayload(req)
}

func (uc *countdownUseCaseImpl) armFromPayload(req ArmRequest) (int64, error) {
	if req.ExpireSeconds != nil && *req.ExpireSeconds > 0 {
		seconds := *req.ExpireSeconds
		expireAt := uc.clock.Now().Add(time.Duration(seconds) * time.Second)
		uc.store.Set(req.OrderID, expireAt, &seconds)
		return seconds, nil
	}
	if req.CreateTime != nil {
		return uc.armFromCreateTime(req.OrderID, *req.CreateTime), nil
	}
	return 0, ErrUnknownExpiry
}

func (uc *countdownUseCaseImpl) armFromCreateTime(orderID string, createTime time.Time) int64 {
	expireAt := createTime.Add(uc.window)
	uc.store.Set(orderID, expireAt, nil)
	remaining, _ := uc.store.Remaining(orderID)
	return remaining
}

// Reconcile applies one authoritative correction. An upstream failure leaves
// the local countdown untouched: the 1s tick keeps showing the last known
// value, which beats zeroing a payable order.
func (uc *countdownUseCaseImpl) Reconcile(ctx context.Context, orderID string) (int64, error) {
	status, err := uc.statuses.OrderStatus(ctx, orderID)
	if err != nil {
		return 0, errs.Mark(err, ErrUpstreamFailed)
	}

	now := uc.clock.Now()
	if status.AwaitingPayment() && status.ExpireSeconds != nil && *status.ExpireSeconds > 0 {
		seconds := *status.ExpireSeconds
		if !uc.store.SetIfPresent(orderID, now.Add(time.Duration(seconds)*time.Second), &seconds) {
			// Cleared while the poll was in flight; do not resurrect.
			return 0, nil
		}
		return seconds, nil
	}

	// Paid, canceled or expired upstream: force the countdown to zero.
	uc.store.SetIfPresent(orderID, now, nil)
	return 0, nil
}

func (uc *countdownUseCaseImpl) Refresh(orderID string) {
	uc.store.Refresh(orderID)
}

func (uc *countdownUseCaseImpl) Clear(orderID string) {
	uc.store.Clear(orderID)
}

func (uc *countdownUseCaseImpl) ClearAll() {
	uc.store.ClearAll()
}
