package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Gateway rejection reasons.
const (
	ReasonInvalidJSON       = "invalid_json_payload"
	ReasonIPNotWhitelisted  = "ip_not_whitelisted"
	ReasonRateLimited       = "rate_limit_exceeded"
	ReasonMissingSignature  = "missing_signature"
	ReasonMissingTimestamp  = "missing_timestamp"
	ReasonInvalidTimestamp  = "invalid_timestamp"
	ReasonInvalidSignature  = "invalid_signature"
	ReasonSecretMissing     = "webhook_secret_not_configured"
	ReasonUnknownEvent      = "unknown_event"
	ReasonMissingOrderID    = "missing_order_id"
	ReasonInvalidAmount     = "invalid_amount"
	ReasonExceedsMaxGrams   = "exceeds_max_grams"
	ReasonExceedsMaxUSD     = "exceeds_max_usd"
	ReasonDevModeNoSecret   = "dev_mode_no_secret"
	reasonTimestampDrift    = "timestamp_expired_drift_"
	reasonAllowed           = "allowed"
	reasonAllowedDuplicate  = "allowed_duplicate"
	rateLimitKeyPrefix      = "webhook:ip:"
	minRetryAfter           = time.Second
	millisecondTimestampMin = 1_000_000_000_000
)

// GatewayConfig holds the gateway policy. EnforceIPAllowlist only matters
// outside production; a production gateway always checks AllowedIPs.
type GatewayConfig struct {
	Secret             string
	AllowedIPs         []string
	EnforceIPAllowlist bool
	Production         bool
	RateLimit          int64
	RateWindow         time.Duration
	MaxTimestampDrift  time.Duration
	IdempotencyTTL     time.Duration
	MaxGrams           decimal.Decimal
	MaxUSD             decimal.Decimal
}

// WebhookGatewayImpl implements ports.WebhookGateway.
type WebhookGatewayImpl struct {
	cfg      GatewayConfig
	allowed  []netip.Prefix
	limiter  ports.RateLimiter
	replay   ports.ReplayStore
	sigSvc   ports.SignatureService
	auditSvc ports.WebhookAuditService
	log      zerolog.Logger
	now      func() time.Time
}

// NewWebhookGateway creates the gateway. Allowed IPs may be single
// addresses or CIDR prefixes.
func NewWebhookGateway(
	cfg GatewayConfig,
	limiter ports.RateLimiter,
	replay ports.ReplayStore,
	sigSvc ports.SignatureService,
	auditSvc ports.WebhookAuditService,
	log zerolog.Logger,
) (*WebhookGatewayImpl, error) {
	var allowed []netip.Prefix
	for _, raw := range cfg.AllowedIPs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid allowed ip prefix %q: %w", raw, err)
			}
			allowed = append(allowed, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed ip %q: %w", raw, err)
		}
		allowed = append(allowed, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	if cfg.IdempotencyTTL <= 0 {
		cfg.IdempotencyTTL = 24 * time.Hour
	}
	if cfg.MaxTimestampDrift <= 0 {
		cfg.MaxTimestampDrift = 5 * time.Minute
	}
	return &WebhookGatewayImpl{
		cfg:      cfg,
		allowed:  allowed,
		limiter:  limiter,
		replay:   replay,
		sigSvc:   sigSvc,
		auditSvc: auditSvc,
		log:      log,
		now:      time.Now,
	}, nil
}

// Admit runs the admission pipeline. Exactly one audit entry is recorded per
// call.
func (g *WebhookGatewayImpl) Admit(ctx context.Context, req ports.AdmitRequest) (*ports.AdmittedPayload, error) {
	entry := domain.WebhookAuditEntry{
		ID:         uuid.New(),
		ReceivedAt: g.now().UTC(),
		SourceIP:   req.SourceIP,
	}

	// 1. Body parse
	var ev domain.InboundEvent
	if err := json.Unmarshal(req.RawBody, &ev); err != nil {
		return nil, g.reject(ctx, entry, http.StatusBadRequest, ReasonInvalidJSON, 0)
	}
	entry.EventType = string(ev.Event)
	entry.OrderReference = ev.OrderID

	// 2. IP allowlist, always enforced in production
	if g.enforceAllowlist() && !g.ipAllowed(req.SourceIP) {
		return nil, g.reject(ctx, entry, http.StatusForbidden, ReasonIPNotWhitelisted, 0)
	}

	// 3. Rate limit
	if g.limiter != nil && g.cfg.RateLimit > 0 {
		res, err := g.limiter.Allow(ctx, rateLimitKeyPrefix+req.SourceIP, g.cfg.RateLimit, g.cfg.RateWindow)
		if err != nil {
			g.log.Warn().Err(err).Str("source_ip", req.SourceIP).Msg("rate limiter unavailable, admitting")
		} else if !res.Allowed {
			retryAfter := res.ResetAt.Sub(g.now())
			if retryAfter < minRetryAfter {
				retryAfter = minRetryAfter
			}
			return nil, g.reject(ctx, entry, http.StatusTooManyRequests, ReasonRateLimited, retryAfter)
		}
	}

	// 4. Signature + timestamp
	devMode := false
	if g.cfg.Secret == "" {
		if g.cfg.Production {
			return nil, g.reject(ctx, entry, http.StatusUnauthorized, ReasonSecretMissing, 0)
		}
		devMode = true
		g.log.Warn().Str("reference", ev.OrderID).Msg(ReasonDevModeNoSecret)
	} else {
		if req.Signature == "" {
			return nil, g.reject(ctx, entry, http.StatusUnauthorized, ReasonMissingSignature, 0)
		}
		if req.Timestamp == "" {
			return nil, g.reject(ctx, entry, http.StatusUnauthorized, ReasonMissingTimestamp, 0)
		}
		sentAt, err := parseWebhookTimestamp(req.Timestamp)
		if err != nil {
			return nil, g.reject(ctx, entry, http.StatusUnauthorized, ReasonInvalidTimestamp, 0)
		}
		drift := g.now().Sub(sentAt)
		if drift < 0 {
			drift = -drift
		}
		if drift > g.cfg.MaxTimestampDrift {
			return nil, g.reject(ctx, entry, http.StatusUnauthorized,
				reasonTimestampDrift+strconv.FormatInt(drift.Milliseconds(), 10), 0)
		}
		if !g.sigSvc.Verify(g.cfg.Secret, g.sigSvc.CanonicalString(req.Timestamp, req.RawBody), req.Signature) {
			return nil, g.reject(ctx, entry, http.StatusUnauthorized, ReasonInvalidSignature, 0)
		}
		entry.SignatureValid = true
	}

	if !ev.Event.Valid() {
		return nil, g.reject(ctx, entry, http.StatusBadRequest, ReasonUnknownEvent, 0)
	}
	if strings.TrimSpace(ev.OrderID) == "" {
		return nil, g.reject(ctx, entry, http.StatusBadRequest, ReasonMissingOrderID, 0)
	}

	// 5. Idempotency
	key := ev.IdempotencyKey()
	seen, err := g.replay.Seen(ctx, key)
	if err != nil {
		// The database uniqueness constraints still stop double application.
		g.log.Warn().Err(err).Str("key", key).Msg("replay store unavailable")
	}
	if seen {
		entry.Reason = reasonAllowedDuplicate
		g.auditSvc.Record(ctx, entry)
		metrics.WebhookAdmitted(true)
		return &ports.AdmittedPayload{Event: ev, IdempotencyKey: key, Duplicate: true, DevMode: devMode}, nil
	}

	// 6. Transaction-size limits
	for _, grams := range ev.DeclaredGrams() {
		if grams.IsNegative() {
			return nil, g.reject(ctx, entry, http.StatusBadRequest, ReasonInvalidAmount, 0)
		}
		if g.cfg.MaxGrams.IsPositive() && grams.GreaterThan(g.cfg.MaxGrams) {
			return nil, g.reject(ctx, entry, http.StatusBadRequest, ReasonExceedsMaxGrams, 0)
		}
	}
	if usd := ev.DeclaredUSD(); usd != nil {
		if usd.IsNegative() {
			return nil, g.reject(ctx, entry, http.StatusBadRequest, ReasonInvalidAmount, 0)
		}
		if g.cfg.MaxUSD.IsPositive() && usd.GreaterThan(g.cfg.MaxUSD) {
			return nil, g.reject(ctx, entry, http.StatusBadRequest, ReasonExceedsMaxUSD, 0)
		}
	}

	// 7. Allowed
	entry.Reason = reasonAllowed
	if devMode {
		entry.Reason = ReasonDevModeNoSecret
	}
	g.auditSvc.Record(ctx, entry)
	metrics.WebhookAdmitted(false)

	return &ports.AdmittedPayload{Event: ev, IdempotencyKey: key, DevMode: devMode}, nil
}

// MarkProcessed records the key once the ledger has applied the event.
func (g *WebhookGatewayImpl) MarkProcessed(ctx context.Context, key string) error {
	if err := g.replay.Mark(ctx, key, g.cfg.IdempotencyTTL); err != nil {
		return fmt.Errorf("mark webhook processed: %w", err)
	}
	return nil
}

func (g *WebhookGatewayImpl) reject(ctx context.Context, entry domain.WebhookAuditEntry, status int, reason string, retryAfter time.Duration) error {
	entry.Blocked = true
	entry.Reason = reason
	g.auditSvc.Record(ctx, entry)

	label := reason
	if strings.HasPrefix(reason, reasonTimestampDrift) {
		label = "timestamp_expired"
	}
	metrics.WebhookRejected(label)

	return &domain.WebhookRejection{HTTPStatus: status, Reason: reason, RetryAfter: retryAfter}
}

func (g *WebhookGatewayImpl) enforceAllowlist() bool {
	return g.cfg.Production || g.cfg.EnforceIPAllowlist
}

func (g *WebhookGatewayImpl) ipAllowed(raw string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range g.allowed {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// parseWebhookTimestamp accepts unix seconds, unix milliseconds or RFC 3339.
func parseWebhookTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n >= millisecondTimestampMin {
			return time.UnixMilli(n), nil
		}
		return time.Unix(n, 0), nil
	}
	return time.Parse(time.RFC3339Nano, raw)
}
