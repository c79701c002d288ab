package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultMaxResponseBody = 1024

// NotificationPayload is the JSON body sent to the requester callback URL.
type NotificationPayload struct {
	Event     domain.WebhookEventType `json:"event"`
	OrderID   string                  `json:"orderId"`
	Timestamp string                  `json:"timestamp"`
	Data      any                     `json:"data"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NotifierService implements ports.Notifier. Each call makes exactly one
// delivery attempt; the outcome is persisted and never returned.
type NotifierService struct {
	deliveries ports.DeliveryLogRepository
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	secret     string
	timeout    time.Duration
	maxBody    int
	log        zerolog.Logger
	now        func() time.Time
}

// NewNotifierService creates a new notifier. maxBody bounds the stored
// response body.
func NewNotifierService(
	deliveries ports.DeliveryLogRepository,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	secret string,
	timeout time.Duration,
	maxBody int,
	log zerolog.Logger,
) *NotifierService {
	if maxBody <= 0 {
		maxBody = defaultMaxResponseBody
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &NotifierService{
		deliveries: deliveries,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		secret:     secret,
		timeout:    timeout,
		maxBody:    maxBody,
		log:        log,
		now:        time.Now,
	}
}

// Notify posts a signed lifecycle event to the order's callback URL.
func (s *NotifierService) Notify(ctx context.Context, order *domain.PurchaseOrder, event domain.WebhookEventType, data any) {
	if order.CallbackURL == nil || *order.CallbackURL == "" {
		s.log.Debug().Str("order_id", order.ID.String()).Str("event", string(event)).Msg("notify: no callback URL, skipping")
		return
	}
	url := *order.CallbackURL
	now := s.now().UTC()

	body, err := json.Marshal(NotificationPayload{
		Event:     event,
		OrderID:   order.ExternalReference,
		Timestamp: now.Format(time.RFC3339),
		Data:      data,
	})
	if err != nil {
		s.log.Error().Err(err).Str("order_id", order.ID.String()).Msg("notify: failed to marshal payload")
		return
	}

	entry := &domain.OutboundDeliveryLog{
		ID:        uuid.New(),
		OrderID:   order.ID,
		Event:     string(event),
		URL:       url,
		Payload:   string(body),
		CreatedAt: now,
	}

	s.deliver(ctx, url, body, entry)
	metrics.NotificationDelivered(string(event), entry.Success)

	// Outlive a cancelled request context so the attempt is always logged.
	if err := s.deliveries.Create(context.WithoutCancel(ctx), entry); err != nil {
		s.log.Warn().Err(err).Str("order_id", order.ID.String()).Msg("notify: failed to persist delivery log")
	}
}

func (s *NotifierService) deliver(ctx context.Context, url string, body []byte, entry *domain.OutboundDeliveryLog) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()
	start := time.Now()
	defer func() { entry.DurationMs = time.Since(start).Milliseconds() }()

	fail := func(err error) {
		msg := err.Error()
		entry.Error = &msg
		s.log.Warn().Err(err).Str("order_id", entry.OrderID.String()).Str("event", entry.Event).Msg("notify: delivery failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		fail(err)
		return
	}
	ts := strconv.FormatInt(s.now().Unix(), 10)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Timestamp", ts)
	req.Header.Set("X-Signature", s.sigSvc.Sign(s.secret, s.sigSvc.CanonicalString(ts, body)))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		fail(err)
		return
	}
	defer resp.Body.Close()

	status := resp.StatusCode
	entry.HTTPStatus = &status
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, int64(s.maxBody)))
	respBody := string(snippet)
	entry.ResponseBody = &respBody
	entry.Success = status >= 200 && status < 300

	if entry.Success {
		s.log.Info().Str("order_id", entry.OrderID.String()).Str("event", entry.Event).Int("status", status).Msg("notify: delivered")
		return
	}
	s.log.Warn().Str("order_id", entry.OrderID.String()).Str("event", entry.Event).Int("status", status).Msg("notify: non-2xx response")
}
