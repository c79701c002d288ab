// Package custodian is the outbound HTTP client for the vault custodian.
package custodian

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gold-settlement/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const maxErrorBody = 512

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.CustodianClient over the custodian REST API.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a custodian client. Every call is bounded by timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		timeout:    timeout,
		httpClient: httpClient,
		log:        log,
	}
}

type submitOrderBody struct {
	ReferenceNumber        string          `json:"referenceNumber"`
	UserID                 string          `json:"userId"`
	BarSize                string          `json:"barSize"`
	BarCount               int             `json:"barCount"`
	TotalGrams             decimal.Decimal `json:"totalGrams"`
	USDAmount              decimal.Decimal `json:"usdAmount"`
	PreferredVaultLocation string          `json:"preferredVaultLocation,omitempty"`
	CallbackURL            string          `json:"callbackUrl,omitempty"`
}

type submitOrderResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// SubmitOrder posts a fulfillment request to POST /orders.
func (c *Client) SubmitOrder(ctx context.Context, req ports.CustodianOrderRequest) (*ports.CustodianOrderReceipt, error) {
	body := submitOrderBody{
		ReferenceNumber:        req.Reference,
		UserID:                 req.UserID.String(),
		BarSize:                string(req.BarSize),
		BarCount:               req.BarCount,
		TotalGrams:             req.TotalGrams,
		USDAmount:              req.USDAmount,
		PreferredVaultLocation: req.PreferredVaultLocation,
		CallbackURL:            req.CallbackURL,
	}
	var out submitOrderResponse
	if err := c.post(ctx, "/orders", body, &out); err != nil {
		return nil, err
	}
	if out.OrderID == "" {
		return nil, fmt.Errorf("custodian response missing orderId")
	}
	c.log.Info().Str("reference", req.Reference).Str("custodian_order_id", out.OrderID).Msg("order submitted to custodian")
	return &ports.CustodianOrderReceipt{CustodianOrderID: out.OrderID, Status: out.Status}, nil
}

// CancelOrder posts to POST /orders/{id}/cancel.
func (c *Client) CancelOrder(ctx context.Context, custodianOrderID string, reason string) error {
	return c.post(ctx, "/orders/"+custodianOrderID+"/cancel", map[string]string{"reason": reason}, nil)
}

func (c *Client) post(ctx context.Context, path string, in any, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal custodian request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build custodian request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Dur("elapsed", time.Since(start)).Msg("custodian request failed")
		return fmt.Errorf("custodian %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("custodian rejected request")
		return fmt.Errorf("custodian %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode custodian response: %w", err)
	}
	return nil
}
