package handler

import (
	"strconv"

	"gold-settlement/internal/adapter/http/dto"
	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/pkg/apperror"
	"gold-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// CashLedgerHandler handles the cash safety ledger endpoints.
type CashLedgerHandler struct {
	cash ports.CashLedgerService
}

// NewCashLedgerHandler creates a new CashLedgerHandler.
func NewCashLedgerHandler(cash ports.CashLedgerService) *CashLedgerHandler {
	return &CashLedgerHandler{cash: cash}
}

// PostEntry handles POST /api/v1/admin/cash-ledger/entries.
func (h *CashLedgerHandler) PostEntry(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CashEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	entry, err := h.cash.PostManualEntry(c.Request.Context(), ports.AppendEntryRequest{
		Type:      domain.CashEntryType(req.EntryType),
		Amount:    req.Amount,
		Direction: domain.LedgerDirection(req.Direction),
		ActorID:   &actorID,
		Note:      req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// List handles GET /api/v1/admin/cash-ledger.
func (h *CashLedgerHandler) List(c *gin.Context) {
	after, _ := strconv.ParseInt(c.DefaultQuery("after_sequence", "0"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if after < 0 {
		after = 0
	}
	if limit < 1 || limit > 1000 {
		limit = 100
	}

	balance, err := h.cash.Balance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	entries, err := h.cash.ListEntries(c.Request.Context(), after, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	if entries == nil {
		entries = []domain.CashLedgerEntry{}
	}
	response.OK(c, dto.CashLedgerResponse{Balance: balance, Entries: entries})
}
