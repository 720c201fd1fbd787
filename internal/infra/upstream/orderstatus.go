package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"petstay-bff/internal/pkg/config"
	"petstay-bff/internal/pkg/errs"
)

// Order states as reported by the marketplace API.
const (
	StateCanceled        = 0
	StateAwaitingPayment = 1
	StateReserved        = 2
	StateBoarding        = 3
	StateSettling        = 4
	StateCompleted       = 5
)

// successCode is the marketplace's envelope code for a successful response.
const successCode = 100200

// OrderStatus is the slice of the order the countdown cares about.
// ExpireSeconds is the authoritative remaining payment time and is absent
// once the order is no longer awaiting payment.
type OrderStatus struct {
	OrderID       string     `json:"orderId"`
	State         int        `json:"orderStatus"`
	ExpireSeconds *int64     `json:"expire_seconds,omitempty"`
	CreateTime    *time.Time `json:"create_time,omitempty"`
}

// AwaitingPayment reports whether the order can still be paid.
func (s OrderStatus) AwaitingPayment() bool {
	return s.State == StateAwaitingPayment
}

// OrderStatusClient queries the marketplace for an order's live status.
type OrderStatusClient interface {
	OrderStatus(ctx context.Context, orderID string) (*OrderStatus, error)
}

type httpOrderStatusClient struct {
	baseURL string
	client  *http.Client
}

func NewOrderStatusClient(cfg config.UpstreamConfig) OrderStatusClient {
	return &httpOrderStatusClient{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// envelope is the marketplace's uniform response wrapper.
type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func (c *httpOrderStatusClient) OrderStatus(ctx context.Context, orderID string) (*OrderStatus, error) {
	url := fmt.Sprintf("%s/orders/%s/status", c.baseURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build order status request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "order status request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("order status request returned HTTP %d", resp.StatusCode))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, errs.Wrap(err, "failed to decode order status response")
	}
	if env.Code != successCode {
		return nil, errs.New(fmt.Sprintf("order status request rejected: code=%d msg=%s", env.Code, env.Msg))
	}

	var status OrderStatus
	if err := json.Unmarshal(env.Data, &status); err != nil {
		return nil, errs.Wrap(err, "failed to decode order status payload")
	}
	if status.OrderID == "" {
		status.OrderID = orderID
	}

	return &status, nil
}
