package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/internal/metrics"
	"gold-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"

	defaultAuditLimit = 100
	maxAuditLimit     = 1000

	reasonPayloadTooLarge = "payload_too_large"
)

// WebhookHandler receives custodian webhooks.
type WebhookHandler struct {
	gateway ports.WebhookGateway
	orders  ports.OrderService
	audit   ports.WebhookAuditService
	log     zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(gateway ports.WebhookGateway, orders ports.OrderService, audit ports.WebhookAuditService, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{gateway: gateway, orders: orders, audit: audit, log: log}
}

// Receive handles POST /webhooks. Nothing reaches the ledger until the
// gateway has admitted the payload, and the idempotency key is only marked
// once the ledger applied it so a failed apply can be retried.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		// Unread bodies never reach the gateway, so the attempt is audited here.
		h.audit.Record(c.Request.Context(), domain.WebhookAuditEntry{
			ID:         uuid.New(),
			ReceivedAt: time.Now().UTC(),
			SourceIP:   c.ClientIP(),
			Blocked:    true,
			Reason:     reasonPayloadTooLarge,
		})
		metrics.WebhookRejected(reasonPayloadTooLarge)
		response.Rejected(c, http.StatusRequestEntityTooLarge, reasonPayloadTooLarge, 0)
		return
	}

	admitted, err := h.gateway.Admit(c.Request.Context(), ports.AdmitRequest{
		RawBody:   body,
		Signature: c.GetHeader(HeaderSignature),
		Timestamp: c.GetHeader(HeaderTimestamp),
		SourceIP:  c.ClientIP(),
	})
	if err != nil {
		var rejection *domain.WebhookRejection
		if errors.As(err, &rejection) {
			response.Rejected(c, rejection.HTTPStatus, rejection.Reason, rejection.RetryAfter)
			return
		}
		response.Error(c, err)
		return
	}
	if admitted.Duplicate {
		response.Received(c, true)
		return
	}

	outcome, err := h.orders.HandleEvent(c.Request.Context(), &admitted.Event)
	if err != nil {
		h.log.Warn().Err(err).
			Str("event", string(admitted.Event.Event)).
			Str("order_ref", admitted.Event.OrderID).
			Msg("webhook not applied")
		response.Error(c, err)
		return
	}

	if err := h.gateway.MarkProcessed(c.Request.Context(), admitted.IdempotencyKey); err != nil {
		h.log.Warn().Err(err).Str("key", admitted.IdempotencyKey).Msg("failed to mark webhook processed")
	}
	h.log.Info().
		Str("event", string(admitted.Event.Event)).
		Str("order_id", outcome.OrderID.String()).
		Str("status", string(outcome.Status)).
		Bool("applied", outcome.Applied).
		Bool("inferred", outcome.Inferred).
		Msg("webhook applied")
	response.Received(c, false)
}

// ListAudit handles GET /api/v1/admin/webhooks/audit.
func (h *WebhookHandler) ListAudit(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditLimit)))
	if limit < 1 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}
	response.OK(c, h.audit.Recent(limit))
}
