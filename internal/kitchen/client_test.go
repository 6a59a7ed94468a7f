package kitchen

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-menu/internal/domain"
)

func sampleOrder() domain.OrderSnapshot {
	return domain.OrderSnapshot{
		TableNumber:  "7",
		CustomerName: "Cliente",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Moqueca", PriceCents: 6450, Quantity: 1},
			{ProductID: "p2", Name: "Guaraná", PriceCents: 750, Quantity: 2},
		},
		TotalCents: 7950,
		Notes:      "sem pimenta",
		Status:     domain.OrderStatusPreparing,
	}
}

func TestCreateOrderSendsExpectedPayload(t *testing.T) {
	var got map[string]any
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		requestID = r.Header.Get("X-Request-ID")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nil)
	require.NoError(t, client.CreateOrder(context.Background(), sampleOrder()))

	assert.NotEmpty(t, requestID)
	assert.Equal(t, "7", got["tableNumber"])
	assert.Equal(t, "Cliente", got["customerName"])
	assert.Equal(t, "preparing", got["status"])
	assert.Equal(t, "sem pimenta", got["notes"])
	assert.InDelta(t, 79.50, got["total"], 0.001)

	items, ok := got["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "p1", first["productId"])
	assert.Equal(t, "Moqueca", first["name"])
	assert.InDelta(t, 64.50, first["price"], 0.001)
	assert.EqualValues(t, 1, first["quantity"])
}

func TestCreateOrderNon2xxIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "kitchen on fire", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nil)
	err := client.CreateOrder(context.Background(), sampleOrder())
	assert.Error(t, err)
}

func TestCreateOrderHonorsContextCancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server starts its background read and can
		// observe the client disconnect; otherwise r.Context() is never
		// canceled and srv.Close deadlocks.
		io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	err := client.CreateOrder(ctx, sampleOrder())
	assert.Error(t, err)
}
