package handler

import (
	"strconv"
	"time"

	"gold-settlement/internal/adapter/http/dto"
	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/pkg/apperror"
	"gold-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// TriggerManual labels runs started from the admin API.
const TriggerManual = "manual"

// ReconciliationHandler handles reconciliation runs and alerts.
type ReconciliationHandler struct {
	recon ports.ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(recon ports.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{recon: recon}
}

// Run handles POST /api/v1/admin/reconciliation/run.
func (h *ReconciliationHandler) Run(c *gin.Context) {
	report, err := h.recon.Run(c.Request.Context(), TriggerManual)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toRunReportResponse(report))
}

// ListAlerts handles GET /api/v1/admin/reconciliation/alerts.
func (h *ReconciliationHandler) ListAlerts(c *gin.Context) {
	unresolved, err := strconv.ParseBool(c.DefaultQuery("unresolved", "true"))
	if err != nil {
		response.Error(c, apperror.Validation("unresolved must be a boolean"))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	alerts, err := h.recon.ListAlerts(c.Request.Context(), unresolved, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	if alerts == nil {
		alerts = []domain.ReconciliationAlert{}
	}
	response.OK(c, alerts)
}

// ResolveAlert handles POST /api/v1/admin/reconciliation/alerts/:id/resolve.
func (h *ReconciliationHandler) ResolveAlert(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	alertID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ResolveAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	alert, err := h.recon.ResolveAlert(c.Request.Context(), alertID, actorID, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, alert)
}

func toRunReportResponse(r *ports.RunReport) dto.RunReportResponse {
	resp := dto.RunReportResponse{
		Trigger:    r.Trigger,
		StartedAt:  r.StartedAt.Format(time.RFC3339),
		FinishedAt: r.FinishedAt.Format(time.RFC3339),
		Checks:     make([]dto.CheckResponse, 0, len(r.Checks)),
	}
	for _, chk := range r.Checks {
		item := dto.CheckResponse{
			Type:          chk.Type,
			Severity:      chk.Severity,
			ExpectedValue: chk.Divergence.Expected,
			ActualValue:   chk.Divergence.Actual,
			Difference:    chk.Divergence.Difference,
			DifferencePct: chk.Divergence.Percentage,
			Suppressed:    chk.Suppressed,
		}
		if chk.AlertID != nil {
			s := chk.AlertID.String()
			item.AlertID = &s
		}
		resp.Checks = append(resp.Checks, item)
	}
	return resp
}
