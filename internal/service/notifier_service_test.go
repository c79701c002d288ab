package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/testutil/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func notifierOrder() *domain.PurchaseOrder {
	url := "https://requester.example.com/hooks"
	return &domain.PurchaseOrder{ID: uuid.New(), ExternalReference: "WG-20261019-AAAA0001", CallbackURL: &url}
}

func TestNotifierService_Notify_SignedDelivery(t *testing.T) {
	store := memstore.New()
	sig := NewHMACSignatureService()

	var captured *http.Request
	var capturedBody []byte
	client := &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
		captured = req
		capturedBody, _ = io.ReadAll(req.Body)
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(`{"ok":true}`))}, nil
	}}

	svc := NewNotifierService(store.Repos().DeliveryLogs, sig, client, "notify-secret", time.Second, 0, newTestLogger())
	order := notifierOrder()
	svc.Notify(context.Background(), order, domain.EventBarAllocated, map[string]string{"serialNumber": "SN-1"})

	require.NotNil(t, captured)
	ts := captured.Header.Get("X-Timestamp")
	assert.True(t, sig.Verify("notify-secret", sig.CanonicalString(ts, capturedBody), captured.Header.Get("X-Signature")))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(capturedBody, &payload))
	assert.Equal(t, "bar.allocated", payload["event"])
	assert.Equal(t, "WG-20261019-AAAA0001", payload["orderId"])

	logs := store.Deliveries()
	require.Len(t, logs, 1)
	assert.True(t, logs[0].Success)
	assert.Equal(t, 200, *logs[0].HTTPStatus)
	assert.Equal(t, `{"ok":true}`, *logs[0].ResponseBody)
}

func TestNotifierService_Notify_TruncatesResponse(t *testing.T) {
	store := memstore.New()
	client := &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: 500, Body: io.NopCloser(strings.NewReader(strings.Repeat("x", 5000)))}, nil
	}}

	svc := NewNotifierService(store.Repos().DeliveryLogs, NewHMACSignatureService(), client, "s", time.Second, 0, newTestLogger())
	svc.Notify(context.Background(), notifierOrder(), domain.EventOrderCancelled, nil)

	logs := store.Deliveries()
	require.Len(t, logs, 1)
	assert.False(t, logs[0].Success)
	assert.Len(t, *logs[0].ResponseBody, 1024)
}

func TestNotifierService_Notify_TransportError(t *testing.T) {
	store := memstore.New()
	client := &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}}

	svc := NewNotifierService(store.Repos().DeliveryLogs, NewHMACSignatureService(), client, "s", time.Second, 0, newTestLogger())
	svc.Notify(context.Background(), notifierOrder(), domain.EventOrderConfirmed, nil)

	logs := store.Deliveries()
	require.Len(t, logs, 1)
	assert.False(t, logs[0].Success)
	assert.Nil(t, logs[0].HTTPStatus)
	require.NotNil(t, logs[0].Error)
	assert.Contains(t, *logs[0].Error, "connection refused")
}

func TestNotifierService_Notify_NoCallbackURL(t *testing.T) {
	store := memstore.New()
	client := &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
		t.Fatal("no request expected")
		return nil, nil
	}}

	svc := NewNotifierService(store.Repos().DeliveryLogs, NewHMACSignatureService(), client, "s", time.Second, 0, newTestLogger())
	svc.Notify(context.Background(), &domain.PurchaseOrder{ID: uuid.New()}, domain.EventOrderConfirmed, nil)
	assert.Empty(t, store.Deliveries())
}
