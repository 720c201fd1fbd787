//go:build unit

package upstream_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petstay-bff/internal/infra/upstream"
	"petstay-bff/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(serverURL string) upstream.OrderStatusClient {
	return upstream.NewOrderStatusClient(config.UpstreamConfig{
		BaseURL: serverURL,
		Timeout: 2 * time.Second,
	})
}

func TestOrderStatusAwaitingPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/o1/status", r.URL.Path)
		fmt.Fprint(w, `{"code":100200,"msg":"ok","data":{"orderId":"o1","orderStatus":1,"expire_seconds":87}}`)
	}))
	defer server.Close()

	status, err := newClient(server.URL).OrderStatus(context.Background(), "o1")
	require.NoError(t, err)

	assert.True(t, status.AwaitingPayment())
	require.NotNil(t, status.ExpireSeconds)
	assert.Equal(t, int64(87), *status.ExpireSeconds)
}

func TestOrderStatusTerminalStateOmitsExpireSeconds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"code":100200,"msg":"ok","data":{"orderId":"o1","orderStatus":2}}`)
	}))
	defer server.Close()

	status, err := newClient(server.URL).OrderStatus(context.Background(), "o1")
	require.NoError(t, err)

	assert.False(t, status.AwaitingPayment())
	assert.Nil(t, status.ExpireSeconds)
}

func TestOrderStatusEnvelopeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"code":100404,"msg":"order not found","data":null}`)
	}))
	defer server.Close()

	_, err := newClient(server.URL).OrderStatus(context.Background(), "o1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order not found")
}

func TestOrderStatusHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newClient(server.URL).OrderStatus(context.Background(), "o1")
	require.Error(t, err)
}
