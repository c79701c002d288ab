package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const adminPrefix = "/api/v1/admin"

// AuditLog records every admin write request after the handler ran, with the
// caller's IP and the response status. Services add their own entries with
// the domain details.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}
		action, resourceType := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var actorID *uuid.UUID
		if id, ok := ActorID(c); ok {
			actorID = &id
		}

		status := c.Writer.Status()
		outcome := "success"
		if status < 200 || status >= 300 {
			outcome = "rejected"
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      actorID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			Outcome:      outcome,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

// mapPathToAction maps a route template to its audit action.
func mapPathToAction(route, method string) (domain.AuditAction, string) {
	if method != http.MethodPost {
		return "", ""
	}
	switch route {
	case adminPrefix + "/orders":
		return domain.AuditActionCreateOrder, "order"
	case adminPrefix + "/orders/:id/approve":
		return domain.AuditActionApproveOrder, "order"
	case adminPrefix + "/orders/:id/reject":
		return domain.AuditActionRejectOrder, "order"
	case adminPrefix + "/orders/:id/cancel":
		return domain.AuditActionCancelOrder, "order"
	case adminPrefix + "/orders/:id/settlement/approve":
		return domain.AuditActionApproveSettlement, "order"
	case adminPrefix + "/orders/:id/settlement/reject":
		return domain.AuditActionRejectSettlement, "order"
	case adminPrefix + "/conversions":
		return domain.AuditActionRequestConversion, "conversion"
	case adminPrefix + "/conversions/:id/approve":
		return domain.AuditActionApproveConversion, "conversion"
	case adminPrefix + "/conversions/:id/reject":
		return domain.AuditActionRejectConversion, "conversion"
	case adminPrefix + "/cash-ledger/entries":
		return domain.AuditActionCashLedgerEntry, "cash_ledger"
	case adminPrefix + "/reconciliation/run":
		return domain.AuditActionRunReconciliation, "reconciliation"
	case adminPrefix + "/reconciliation/alerts/:id/resolve":
		return domain.AuditActionResolveAlert, "reconciliation_alert"
	}
	return "", ""
}
