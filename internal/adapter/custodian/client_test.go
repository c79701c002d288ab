package custodian

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() ports.CustodianOrderRequest {
	return ports.CustodianOrderRequest{
		Reference:              "WG-20261019-AAAA0001",
		UserID:                 uuid.MustParse("7f1c2a8e-1b1d-4c3e-9f00-000000000001"),
		BarSize:                domain.BarSize10g,
		BarCount:               5,
		TotalGrams:             decimal.NewFromInt(50),
		USDAmount:              decimal.NewFromInt(4250),
		PreferredVaultLocation: "ZRH-1",
		CallbackURL:            "https://requester.example.com/hooks",
	}
}

func TestClient_SubmitOrder(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "key-123", r.Header.Get("X-API-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"orderId":"WO-991","status":"received"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "key-123", 2*time.Second, nil, zerolog.Nop())
	receipt, err := c.SubmitOrder(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "WO-991", receipt.CustodianOrderID)
	assert.Equal(t, "WG-20261019-AAAA0001", got["referenceNumber"])
	assert.Equal(t, "10g", got["barSize"])
	assert.Equal(t, float64(5), got["barCount"])
	assert.Equal(t, "50", got["totalGrams"])
	assert.Equal(t, "https://requester.example.com/hooks", got["callbackUrl"])
}

func TestClient_SubmitOrder_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, "vault offline")
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k", time.Second, nil, zerolog.Nop()).SubmitOrder(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
	assert.Contains(t, err.Error(), "vault offline")
}

func TestClient_SubmitOrder_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	_, err := NewClient(srv.URL, "k", 50*time.Millisecond, nil, zerolog.Nop()).SubmitOrder(context.Background(), testRequest())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestClient_SubmitOrder_MissingOrderID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"received"}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k", time.Second, nil, zerolog.Nop()).SubmitOrder(context.Background(), testRequest())
	assert.Error(t, err)
}

func TestClient_CancelOrder(t *testing.T) {
	var path, reason string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		reason = body["reason"]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "k", time.Second, nil, zerolog.Nop()).CancelOrder(context.Background(), "WO-991", "requester cancelled")
	require.NoError(t, err)
	assert.Equal(t, "/orders/WO-991/cancel", path)
	assert.Equal(t, "requester cancelled", reason)
}
